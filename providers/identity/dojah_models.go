package identity

// Dojah wraps successful lookups in an "entity" envelope and errors in
// a bare "error" field.
type DojahResponse struct {
	Entity DojahEntity `json:"entity"`
	Error  string      `json:"error"`
}

type DojahEntity struct {
	NIN              string `json:"nin"`
	VNIN             string `json:"vnin"`
	BVN              string `json:"bvn"`
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	PhoneNumber      string `json:"phone_number"`
	PhoneNumberAlt   string `json:"phone_number1"`
	Email            string `json:"email"`
	ResidenceAddress string `json:"residence_address"`
	ResidenceState   string `json:"residence_state"`
	ResidenceLGA     string `json:"residence_lga"`
	StateOfOrigin    string `json:"state_of_origin"`
	LGAOfOrigin      string `json:"lga_of_origin"`
	Nationality      string `json:"nationality"`
	Image            string `json:"image"`
	Picture          string `json:"picture"`
	Photo            string `json:"photo"`
	MaritalStatus    string `json:"marital_status"`
	EmploymentStatus string `json:"employment_status"`
}

func (e *DojahEntity) toRecord() *Record {
	return &Record{
		IDNumber:         firstNonEmpty(e.NIN, e.VNIN, e.BVN),
		FirstName:        e.FirstName,
		MiddleName:       e.MiddleName,
		LastName:         e.LastName,
		DateOfBirth:      e.DateOfBirth,
		Gender:           e.Gender,
		PhoneNumber:      firstNonEmpty(e.PhoneNumber, e.PhoneNumberAlt),
		Email:            e.Email,
		Address:          e.ResidenceAddress,
		StateOfResidence: e.ResidenceState,
		LGAOfResidence:   e.ResidenceLGA,
		StateOfOrigin:    e.StateOfOrigin,
		LGAOfOrigin:      e.LGAOfOrigin,
		Nationality:      e.Nationality,
		Photo:            firstNonEmpty(e.Image, e.Picture, e.Photo),
		MaritalStatus:    e.MaritalStatus,
		EmploymentStatus: e.EmploymentStatus,
	}
}
