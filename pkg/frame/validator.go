// validator.go: Sanity checks for authored frames.
package frame

import "fmt"

// Validate reports problems with a frame as warnings. Frames with warnings
// still load; duplicate keys are reported but not rejected.
func Validate(f *Frame) []string {
	var warnings []string

	if f.ID == "" {
		warnings = append(warnings, "frame has no id")
	}
	if f.ReferenceWidth < 0 || f.ReferenceHeight < 0 {
		warnings = append(warnings, fmt.Sprintf("frame %q: negative reference canvas: using %gx%g", f.ID, ReferenceWidth, ReferenceHeight))
	}

	seen := make(map[string]struct{}, len(f.Placeholders))
	for i, p := range f.Placeholders {
		if p.Key == "" {
			warnings = append(warnings, fmt.Sprintf("frame %q: placeholder %d has no key", f.ID, i))
		}
		if _, dup := seen[p.Key]; dup {
			warnings = append(warnings, fmt.Sprintf("frame %q: duplicate placeholder key %q", f.ID, p.Key))
		}
		seen[p.Key] = struct{}{}

		switch p.Type {
		case TypeText, TypeImage, TypeFill:
		default:
			warnings = append(warnings, fmt.Sprintf("frame %q: placeholder %q has unknown type %q", f.ID, p.Key, p.Type))
		}
		if p.X < 0 || p.Y < 0 || p.Width < 0 || p.Height < 0 || p.FontSize < 0 {
			warnings = append(warnings, fmt.Sprintf("frame %q: placeholder %q has negative geometry", f.ID, p.Key))
		}
	}

	return warnings
}

// ValidateAll validates every frame in order.
func ValidateAll(frames []Frame) []string {
	var warnings []string
	for i := range frames {
		warnings = append(warnings, Validate(&frames[i])...)
	}
	return warnings
}
