package response

import (
	"time"

	"github.com/jpmiranda/regform/internal/model"
	"github.com/jpmiranda/regform/internal/services/form"
)

// Record represents a persisted identity record in API responses
type Record struct {
	ID               string    `json:"id"`
	StudentNumber    string    `json:"student_number"`
	FullName         string    `json:"full_name"`
	Program          string    `json:"program"`
	YearLevel        string    `json:"year_level"`
	RegistrationDate time.Time `json:"registration_date"`
}

// RecordFromModel converts a model.IdentityRecord to a response Record
func RecordFromModel(r *model.IdentityRecord) Record {
	return Record{
		ID:               r.ID,
		StudentNumber:    r.StudentNumber,
		FullName:         r.FullName,
		Program:          r.Program,
		YearLevel:        r.YearLevel,
		RegistrationDate: r.RegistrationDate,
	}
}

// Form represents a registration form in API responses
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

// FormFromModel converts a model.Form to a response Form
func FormFromModel(f *model.Form, hasImage bool) Form {
	fieldErrors := make(map[string]string, len(f.FieldErrors))
	for field, msg := range f.FieldErrors {
		fieldErrors[string(field)] = msg
	}

	var record *Record
	if f.Record != nil {
		r := RecordFromModel(f.Record)
		record = &r
	}

	options := model.YearLevelsFor(f.Program)
	if options == nil {
		options = []string{}
	}

	return Form{
		ID:               string(f.ID),
		StudentNumber:    f.StudentNumber,
		LastName:         f.LastName,
		FirstName:        f.FirstName,
		Program:          f.Program,
		YearLevel:        f.YearLevel,
		FieldErrors:      fieldErrors,
		Phase:            string(f.Phase),
		Progress:         form.Progress(f),
		YearLevelOptions: options,
		Record:           record,
		HasImage:         hasImage,
	}
}

// Image is the JSON rendering of an encoded image, suitable for inline
// display without a second request
type Image struct {
	RecordID string `json:"record_id"`
	DataURI  string `json:"data_uri"`
	FileName string `json:"file_name"`
}

// ImageFromModel converts an encoded image plus its form to a response Image
func ImageFromModel(img *model.EncodedImage, f *model.Form) Image {
	return Image{
		RecordID: img.RecordID,
		DataURI:  img.DataURI(),
		FileName: model.ImageFileName(f.FirstName, f.LastName),
	}
}

// Programs lists the selectable programs and their year levels
type Programs struct {
	Programs []Program `json:"programs"`
}

// Program is a single program option
type Program struct {
	Name       string   `json:"name"`
	YearLevels []string `json:"year_levels"`
}

// ProgramsFromModel builds the Programs response from the model catalog
func ProgramsFromModel() Programs {
	names := model.Programs()
	programs := make([]Program, len(names))
	for i, name := range names {
		programs[i] = Program{
			Name:       name,
			YearLevels: model.YearLevelsFor(name),
		}
	}
	return Programs{Programs: programs}
}
