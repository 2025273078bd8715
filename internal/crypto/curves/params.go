package curves

import (
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// Params holds hex-encoded domain parameters as they appear in standards
// documents and configuration files. A leading "0x" is optional.
type Params struct {
	Name string `yaml:"name"`
	P    string `yaml:"p"`
	N    string `yaml:"n"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Gx   string `yaml:"gx"`
	Gy   string `yaml:"gy"`
}

// LoadParams decodes a YAML domain parameter document.
func LoadParams(r io.Reader) (Params, error) {
	var p Params
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Params{}, errors.Wrap(err, "decoding domain parameters")
	}
	return p, nil
}

// Curve parses the parameters and builds the curve. It does not run
// Validate.
func (p Params) Curve() (*Curve, error) {
	fields := []struct {
		name string
		hex  string
	}{
		{"p", p.P}, {"n", p.N}, {"a", p.A}, {"b", p.B}, {"gx", p.Gx}, {"gy", p.Gy},
	}
	vals := make([]*big.Int, len(fields))
	for i, f := range fields {
		v, err := ParseHex(f.hex)
		if err != nil {
			return nil, errors.Wrapf(ecc.ErrInvalidParams, "%s: %v", f.name, err)
		}
		vals[i] = v
	}
	return New(p.Name, vals[2], vals[3], vals[0], vals[1], NewPoint(vals[4], vals[5]))
}

// ParseHex parses a big-endian hexadecimal integer with an optional 0x prefix.
func ParseHex(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if digits == "" {
		return nil, errors.New("empty hex string")
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok || v.Sign() < 0 {
		return nil, errors.Errorf("malformed hex string %q", s)
	}
	return v, nil
}
