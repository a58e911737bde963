package lesson

import (
	"fmt"
	"strconv"
	"strings"
)

// Capabilities describes the GL implementation behind a context.
type Capabilities struct {
	Version string // raw GL_VERSION string
	ES      bool
	Major   int
	Minor   int
}

// ParseCapabilities interprets a GL_VERSION string. OpenGL ES reports
// "OpenGL ES N.M vendor-info" (or "OpenGL ES-CM N.M" for 1.x profiles),
// desktop GL reports "N.M[.R] vendor-info".
func ParseCapabilities(version string) (Capabilities, error) {
	caps := Capabilities{Version: version}
	s := strings.TrimSpace(version)
	if rest, ok := strings.CutPrefix(s, "OpenGL ES"); ok {
		caps.ES = true
		s = strings.TrimLeft(rest, " ")
		if strings.HasPrefix(s, "-") {
			// profile suffix, e.g. "-CM 1.1"
			if i := strings.IndexByte(s, ' '); i >= 0 {
				s = strings.TrimLeft(s[i:], " ")
			}
		}
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return caps, fmt.Errorf("malformed GL version %q", version)
	}
	parts := strings.SplitN(fields[0], ".", 3)
	if len(parts) < 2 {
		return caps, fmt.Errorf("malformed GL version %q", version)
	}
	var err error
	caps.Major, err = strconv.Atoi(parts[0])
	if err != nil {
		return caps, fmt.Errorf("malformed GL major version %q: %v", version, err)
	}
	caps.Minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return caps, fmt.Errorf("malformed GL minor version %q: %v", version, err)
	}
	return caps, nil
}

// SupportsES2 reports whether GLSL ES 1.00 shaders and the ES 2.0 entry
// points are available.
func (c Capabilities) SupportsES2() bool {
	return c.Major >= 2
}

func (c Capabilities) String() string {
	api := "OpenGL"
	if c.ES {
		api = "OpenGL ES"
	}
	return fmt.Sprintf("%s %d.%d", api, c.Major, c.Minor)
}
