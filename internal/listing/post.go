package listing

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/jimezsa/findyourhome/internal/criteria"
)

// PostField names a text input of the posting form.
type PostField string

const (
	PostTitle         PostField = "title"
	PostDescription   PostField = "description"
	PostPropertyType  PostField = "propertyType"
	PostLocation      PostField = "location"
	PostPrice         PostField = "price"
	PostBedrooms      PostField = "bedrooms"
	PostBathrooms     PostField = "bathrooms"
	PostSize          PostField = "size"
	PostAvailableFrom PostField = "availableFrom"
	PostAvailableTo   PostField = "availableTo"
	PostPetsAllowed   PostField = "petsAllowed"
	PostFurnished     PostField = "furnished"
)

var requiredPostFields = []PostField{
	PostTitle, PostDescription, PostLocation, PostPrice,
	PostBedrooms, PostBathrooms, PostSize, PostAvailableFrom,
}

// PostData is the property posting form state, submitted as is.
type PostData struct {
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	PropertyType      criteria.PropertyType `json:"propertyType"`
	Location          string                `json:"location"`
	Price             string                `json:"price"`
	Bedrooms          string                `json:"bedrooms"`
	Bathrooms         string                `json:"bathrooms"`
	Size              string                `json:"size"`
	Amenities         []string              `json:"amenities"`
	PetsAllowed       bool                  `json:"petsAllowed"`
	Furnished         bool                  `json:"furnished"`
	RentalType        criteria.RentalType   `json:"rentalType"`
	UtilitiesIncluded criteria.Utilities    `json:"utilitiesIncluded"`
	AvailableFrom     string                `json:"availableFrom"`
	AvailableTo       string                `json:"availableTo"`
	Images            []string              `json:"images"`
}

func InitialPost() PostData {
	return PostData{
		Amenities:         []string{},
		RentalType:        criteria.RentalLongTerm,
		UtilitiesIncluded: criteria.UtilitiesNo,
		Images:            []string{},
	}
}

type PostForm struct {
	data PostData
}

func NewPostForm() *PostForm {
	return &PostForm{data: InitialPost()}
}

func (f *PostForm) SetField(field PostField, value string) error {
	switch field {
	case PostTitle:
		f.data.Title = value
	case PostDescription:
		f.data.Description = value
	case PostPropertyType:
		f.data.PropertyType = criteria.PropertyType(value)
	case PostLocation:
		f.data.Location = value
	case PostPrice:
		f.data.Price = value
	case PostBedrooms:
		f.data.Bedrooms = value
	case PostBathrooms:
		f.data.Bathrooms = value
	case PostSize:
		f.data.Size = value
	case PostAvailableFrom:
		f.data.AvailableFrom = value
	case PostAvailableTo:
		f.data.AvailableTo = value
	default:
		return fmt.Errorf("%w: %s", criteria.ErrUnknownField, field)
	}
	return nil
}

func (f *PostForm) ToggleSwitch(field PostField) error {
	switch field {
	case PostPetsAllowed:
		f.data.PetsAllowed = !f.data.PetsAllowed
	case PostFurnished:
		f.data.Furnished = !f.data.Furnished
	default:
		return fmt.Errorf("%w: %s", criteria.ErrUnknownField, field)
	}
	return nil
}

func (f *PostForm) ToggleAmenity(name string) {
	f.data.Amenities = criteria.Toggle(f.data.Amenities, name)
}

// SetRentalType accepts the two radio options only.
func (f *PostForm) SetRentalType(value criteria.RentalType) error {
	if value != criteria.RentalShortTerm && value != criteria.RentalLongTerm {
		return fmt.Errorf("rental type must be short-term or long-term: %q", value)
	}
	f.data.RentalType = value
	return nil
}

// SetUtilities accepts yes or no.
func (f *PostForm) SetUtilities(value criteria.Utilities) error {
	if value != criteria.UtilitiesYes && value != criteria.UtilitiesNo {
		return fmt.Errorf("utilities included must be yes or no: %q", value)
	}
	f.data.UtilitiesIncluded = value
	return nil
}

// AddImage records a selected file by base name. File contents are never read.
func (f *PostForm) AddImage(path string) {
	name := filepath.Base(strings.TrimSpace(path))
	if name == "." || name == string(filepath.Separator) {
		return
	}
	f.data.Images = append(f.data.Images, name)
}

// Missing lists the required inputs that are still empty.
func (f *PostForm) Missing() []string {
	values := map[PostField]string{
		PostTitle:         f.data.Title,
		PostDescription:   f.data.Description,
		PostLocation:      f.data.Location,
		PostPrice:         f.data.Price,
		PostBedrooms:      f.data.Bedrooms,
		PostBathrooms:     f.data.Bathrooms,
		PostSize:          f.data.Size,
		PostAvailableFrom: f.data.AvailableFrom,
	}
	var missing []string
	for _, field := range requiredPostFields {
		if strings.TrimSpace(values[field]) == "" {
			missing = append(missing, string(field))
		}
	}
	return missing
}

func (f *PostForm) Snapshot() PostData {
	out := f.data
	out.Amenities = append([]string{}, f.data.Amenities...)
	out.Images = append([]string{}, f.data.Images...)
	return out
}

func (f *PostForm) Submit(consume func(PostData)) {
	if consume == nil {
		return
	}
	consume(f.Snapshot())
}

// Listing converts a submitted post into a listing record. Numeric text that
// does not parse or does not fit an int becomes zero.
func (p PostData) Listing(id string) Listing {
	return Listing{
		ID:                id,
		Source:            "post",
		Title:             strings.TrimSpace(p.Title),
		Location:          strings.TrimSpace(p.Location),
		Price:             number(p.Price),
		PropertyType:      p.PropertyType,
		Bedrooms:          number(p.Bedrooms),
		Bathrooms:         number(p.Bathrooms),
		Size:              number(p.Size),
		Amenities:         append([]string(nil), p.Amenities...),
		PetsAllowed:       p.PetsAllowed,
		Furnished:         p.Furnished,
		RentalType:        p.RentalType,
		UtilitiesIncluded: p.UtilitiesIncluded,
		AvailableFrom:     p.AvailableFrom,
		AvailableTo:       p.AvailableTo,
		Description:       strings.TrimSpace(p.Description),
		Images:            append([]string(nil), p.Images...),
	}
}

func number(text string) int {
	n, ok := criteria.Number(text)
	if !ok || n >= float64(math.MaxInt) || n < float64(math.MinInt) {
		return 0
	}
	return int(n)
}
