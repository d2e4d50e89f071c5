package identity

// QoreID nests the identity payload under a per-registry key with a
// status block describing how the check concluded.
type QoreIDResponse struct {
	ID      int64        `json:"id"`
	Status  QoreIDStatus `json:"status"`
	NIN     QoreIDPerson `json:"nin"`
	BVN     QoreIDPerson `json:"bvn"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
}

type QoreIDStatus struct {
	State  string `json:"state"`
	Status string `json:"status"`
}

type QoreIDPerson struct {
	NIN              string `json:"nin"`
	VNIN             string `json:"vnin"`
	BVN              string `json:"bvn"`
	FirstName        string `json:"firstname"`
	MiddleName       string `json:"middlename"`
	LastName         string `json:"lastname"`
	Birthdate        string `json:"birthdate"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	ResidenceTown    string `json:"residence_town"`
	ResidenceState   string `json:"residence_state"`
	ResidenceLGA     string `json:"residence_lga"`
	StateOfOrigin    string `json:"state_of_origin"`
	LGAOfOrigin      string `json:"lga_of_origin"`
	Nationality      string `json:"nationality"`
	Photo            string `json:"photo"`
	MaritalStatus    string `json:"marital_status"`
	EmploymentStatus string `json:"employment_status"`
}

func (p *QoreIDPerson) toRecord() *Record {
	return &Record{
		IDNumber:         firstNonEmpty(p.NIN, p.VNIN, p.BVN),
		FirstName:        p.FirstName,
		MiddleName:       p.MiddleName,
		LastName:         p.LastName,
		DateOfBirth:      p.Birthdate,
		Gender:           p.Gender,
		PhoneNumber:      p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		StateOfResidence: p.ResidenceState,
		LGAOfResidence:   p.ResidenceLGA,
		StateOfOrigin:    p.StateOfOrigin,
		LGAOfOrigin:      p.LGAOfOrigin,
		Nationality:      p.Nationality,
		Photo:            p.Photo,
		MaritalStatus:    p.MaritalStatus,
		EmploymentStatus: p.EmploymentStatus,
	}
}

func (r *QoreIDResponse) person() *QoreIDPerson {
	if r.NIN != (QoreIDPerson{}) {
		return &r.NIN
	}
	return &r.BVN
}
