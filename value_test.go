package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	req := require.New(t)

	v, err := ParseValue("auto")
	req.NoError(err)
	req.True(v.IsAuto())

	v, err = ParseValue("50%")
	req.NoError(err)
	req.Equal(ValuePercent, v.Kind)
	req.Equal(50.0, v.Magnitude)

	v, err = ParseValue(42.5)
	req.NoError(err)
	req.True(v.IsDefinite())
	req.Equal(42.5, v.Magnitude)

	v, err = ParseValue("content")
	req.NoError(err)
	req.Equal(ValueContent, v.Kind)

	_, err = ParseValue("not-a-value")
	req.Error(err)
}

func TestValueResolve(t *testing.T) {
	req := require.New(t)

	n, ok := Point(10).Resolve(100, true)
	req.True(ok)
	req.Equal(10.0, n)

	n, ok = Percent(50).Resolve(200, true)
	req.True(ok)
	req.Equal(100.0, n)

	_, ok = Percent(50).Resolve(0, false)
	req.False(ok)

	_, ok = Auto.Resolve(100, true)
	req.False(ok)
}
