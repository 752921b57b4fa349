package model

// Programs offered on the registration form. The set is fixed; anything
// outside it fails submission.
const (
	ProgramBSIT = "Bachelor of Science in Information Technology"
	ProgramDIT  = "Diploma in Information Technology"
)

// Programs returns the offered programs in display order
func Programs() []string {
	return []string{ProgramBSIT, ProgramDIT}
}

// YearLevelsFor returns the year levels selectable for the given program:
// four for the bachelor program, three for the diploma program. Unknown or
// unset programs get an empty list, which is what keeps the year level
// field inapplicable until a valid program is chosen.
func YearLevelsFor(program string) []string {
	switch program {
	case ProgramBSIT:
		return []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}
	case ProgramDIT:
		return []string{"1st Year", "2nd Year", "3rd Year"}
	default:
		return nil
	}
}

// ValidYearLevel reports whether the year level is selectable for the program
func ValidYearLevel(program, yearLevel string) bool {
	for _, level := range YearLevelsFor(program) {
		if level == yearLevel {
			return true
		}
	}
	return false
}
