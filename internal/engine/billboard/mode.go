package billboard

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/colonysim/pkg/math"
)

// OrientMode selects how a sprite is turned toward the camera.
type OrientMode int

const (
	// Fixed keeps the renderable's own transform.
	Fixed OrientMode = iota
	// Spherical faces the camera freely.
	Spherical
	// AxisX rotates about the world X axis only.
	AxisX
	// AxisY rotates about the world Y axis only.
	AxisY
	// AxisZ rotates about the world Z axis only.
	AxisZ
)

var modeNames = [...]string{
	Fixed:     "fixed",
	Spherical: "spherical",
	AxisX:     "x",
	AxisY:     "y",
	AxisZ:     "z",
}

// Modes lists every orientation mode in declaration order.
func Modes() []OrientMode {
	return []OrientMode{Fixed, Spherical, AxisX, AxisY, AxisZ}
}

// String returns the config name of the mode.
func (m OrientMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("OrientMode(%d)", int(m))
}

// ParseOrientMode parses a mode name. Axis modes accept "x", "axis-x", "x-axis" and "xaxis".
func ParseOrientMode(s string) (OrientMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "axis-")
	name = strings.TrimPrefix(name, "axis")
	name = strings.TrimSuffix(name, "-axis")
	name = strings.TrimSuffix(name, "axis")
	for i, n := range modeNames {
		if n == name {
			return OrientMode(i), nil
		}
	}
	return Fixed, fmt.Errorf("unknown orientation mode %q", s)
}

// Axis returns the world rotation axis of a constrained mode.
func (m OrientMode) Axis() (math.Vec3, bool) {
	switch m {
	case AxisX:
		return math.UnitX, true
	case AxisY:
		return math.UnitY, true
	case AxisZ:
		return math.UnitZ, true
	}
	return math.Vec3{}, false
}

// MarshalYAML implements yaml.Marshaler.
func (m OrientMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *OrientMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseOrientMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
