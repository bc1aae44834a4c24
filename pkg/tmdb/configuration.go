package tmdb

// Configuration represents the /configuration response.
type Configuration struct {
	Images     ImagesConfiguration `json:"images"      yaml:"images"`
	ChangeKeys []string            `json:"change_keys" yaml:"change_keys"`
}

// ImagesConfiguration holds the image CDN settings needed to build full
// image URLs from file paths.
type ImagesConfiguration struct {
	BaseURL       string   `json:"base_url"        yaml:"base_url"`
	SecureBaseURL string   `json:"secure_base_url" yaml:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"  yaml:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"      yaml:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"    yaml:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"   yaml:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"     yaml:"still_sizes"`
}

// Country represents a /configuration/countries entry.
type Country struct {
	ISO31661    string `json:"iso_3166_1"   yaml:"iso_3166_1"`
	EnglishName string `json:"english_name" yaml:"english_name"`
	NativeName  string `json:"native_name"  yaml:"native_name"`
}

// DepartmentJobs represents a /configuration/jobs entry.
type DepartmentJobs struct {
	Department string   `json:"department" yaml:"department"`
	Jobs       []string `json:"jobs"       yaml:"jobs"`
}

// Language represents a /configuration/languages entry.
type Language struct {
	ISO6391     string `json:"iso_639_1"    yaml:"iso_639_1"`
	EnglishName string `json:"english_name" yaml:"english_name"`
	Name        string `json:"name"         yaml:"name"`
}

// CountryTimezones represents a /configuration/timezones entry.
type CountryTimezones struct {
	ISO31661 string   `json:"iso_3166_1" yaml:"iso_3166_1"`
	Zones    []string `json:"zones"      yaml:"zones"`
}
