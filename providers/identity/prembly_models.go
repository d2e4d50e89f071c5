package identity

// Prembly (IdentityPass) wraps every lookup in a status/detail
// envelope with a two-digit response code.
type PremblyResponse struct {
	Status       bool        `json:"status"`
	Detail       string      `json:"detail"`
	ResponseCode string      `json:"response_code"`
	Message      string      `json:"message"`
	Data         PremblyData `json:"data"`
}

// PremblyData carries both spellings Prembly has been observed to use
// for the same fields across its endpoints.
type PremblyData struct {
	NIN            string `json:"nin"`
	Number         string `json:"number"`
	BVN            string `json:"bvn"`
	FirstName      string `json:"firstname"`
	FirstNameAlt   string `json:"first_name"`
	MiddleName     string `json:"middlename"`
	MiddleNameAlt  string `json:"middle_name"`
	LastName       string `json:"lastname"`
	LastNameAlt    string `json:"last_name"`
	Surname        string `json:"surname"`
	DateOfBirth    string `json:"date_of_birth"`
	Birthdate      string `json:"birthdate"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	TelephoneNo    string `json:"telephoneno"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	ResidenceAddr  string `json:"residence_address_line_1"`
	ResidenceState string `json:"residence_state"`
	ResidenceLGA   string `json:"residence_lga"`
	SelfOriginSt   string `json:"self_origin_state"`
	SelfOriginLGA  string `json:"self_origin_lga"`
	BirthState     string `json:"birthstate"`
	BirthLGA       string `json:"birthlga"`
	Nationality    string `json:"nationality"`
	Photo          string `json:"photo"`
	Picture        string `json:"picture"`
	Image          string `json:"image"`
	MaritalStatus  string `json:"maritalstatus"`
	EmploymentStat string `json:"employmentstatus"`
}

func (d *PremblyData) toRecord() *Record {
	return &Record{
		IDNumber:         firstNonEmpty(d.NIN, d.BVN, d.Number),
		FirstName:        firstNonEmpty(d.FirstName, d.FirstNameAlt),
		MiddleName:       firstNonEmpty(d.MiddleName, d.MiddleNameAlt),
		LastName:         firstNonEmpty(d.LastName, d.LastNameAlt, d.Surname),
		DateOfBirth:      firstNonEmpty(d.DateOfBirth, d.Birthdate),
		Gender:           d.Gender,
		PhoneNumber:      firstNonEmpty(d.Phone, d.TelephoneNo),
		Email:            d.Email,
		Address:          firstNonEmpty(d.Address, d.ResidenceAddr),
		StateOfResidence: d.ResidenceState,
		LGAOfResidence:   d.ResidenceLGA,
		StateOfOrigin:    firstNonEmpty(d.SelfOriginSt, d.BirthState),
		LGAOfOrigin:      firstNonEmpty(d.SelfOriginLGA, d.BirthLGA),
		Nationality:      d.Nationality,
		Photo:            firstNonEmpty(d.Photo, d.Picture, d.Image),
		MaritalStatus:    d.MaritalStatus,
		EmploymentStatus: d.EmploymentStat,
	}
}
