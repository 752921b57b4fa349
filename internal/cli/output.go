package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Form:
		o.printForm(v)
	case Record:
		o.printRecord(v)
	case Image:
		o.printImage(v)
	case Programs:
		o.printPrograms(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Record response type (matches API)
type Record struct {
	ID               string    `json:"id"`
	StudentNumber    string    `json:"student_number"`
	FullName         string    `json:"full_name"`
	Program          string    `json:"program"`
	YearLevel        string    `json:"year_level"`
	RegistrationDate time.Time `json:"registration_date"`
}

// Form response type
type Form struct {
	ID               string            `json:"id"`
	StudentNumber    string            `json:"student_number"`
	LastName         string            `json:"last_name"`
	FirstName        string            `json:"first_name"`
	Program          string            `json:"program"`
	YearLevel        string            `json:"year_level"`
	FieldErrors      map[string]string `json:"field_errors"`
	Phase            string            `json:"phase"`
	Progress         int               `json:"progress"`
	YearLevelOptions []string          `json:"year_level_options"`
	Record           *Record           `json:"record,omitempty"`
	HasImage         bool              `json:"has_image"`
}

// Image response type
type Image struct {
	RecordID string `json:"record_id"`
	DataURI  string `json:"data_uri"`
	FileName string `json:"file_name"`
}

// Programs response type
type Programs struct {
	Programs []Program `json:"programs"`
}

// Program response type
type Program struct {
	Name       string   `json:"name"`
	YearLevels []string `json:"year_levels"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printForm(f Form) {
	fmt.Printf("Form: %s\n", f.ID)
	fmt.Printf("Phase: %s\n", f.Phase)
	fmt.Printf("Progress: %d%%\n", f.Progress)
	fmt.Println()
	fmt.Printf("Student Number: %s\n", valueOrBlank(f.StudentNumber))
	fmt.Printf("Last Name:      %s\n", valueOrBlank(f.LastName))
	fmt.Printf("First Name:     %s\n", valueOrBlank(f.FirstName))
	fmt.Printf("Program:        %s\n", valueOrBlank(f.Program))
	fmt.Printf("Year Level:     %s\n", valueOrBlank(f.YearLevel))

	if len(f.FieldErrors) > 0 {
		fmt.Println("\nField Errors:")
		fields := make([]string, 0, len(f.FieldErrors))
		for field := range f.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Printf("  %s: %s\n", field, f.FieldErrors[field])
		}
	}

	if f.Record != nil {
		fmt.Println("\nRegistered Record:")
		fmt.Printf("  ID: %s\n", f.Record.ID)
		fmt.Printf("  Registered At: %s\n", f.Record.RegistrationDate.Format(time.RFC3339))
	}

	if f.HasImage {
		fmt.Println("\nQR image is ready for download")
	}
}

func (o *Output) printRecord(r Record) {
	fmt.Printf("Record: %s\n", r.ID)
	fmt.Printf("Student Number: %s\n", r.StudentNumber)
	fmt.Printf("Full Name: %s\n", r.FullName)
	fmt.Printf("Program: %s\n", r.Program)
	fmt.Printf("Year Level: %s\n", r.YearLevel)
	fmt.Printf("Registered At: %s\n", r.RegistrationDate.Format(time.RFC3339))
}

func (o *Output) printImage(i Image) {
	fmt.Printf("Record: %s\n", i.RecordID)
	fmt.Printf("File Name: %s\n", i.FileName)
	fmt.Printf("Data URI: %s\n", i.DataURI)
}

func (o *Output) printPrograms(p Programs) {
	for _, prog := range p.Programs {
		fmt.Printf("%s\n", prog.Name)
		for _, yl := range prog.YearLevels {
			fmt.Printf("  - %s\n", yl)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func valueOrBlank(v string) string {
	if v == "" {
		return "(empty)"
	}
	return v
}
