package verification

import (
	"bytes"
	"html/template"

	"github.com/VeriPay/VeriPay-Backend/providers/identity"
)

// SlipLayout selects one of the fixed slip templates.
type SlipLayout string

const (
	LayoutRegular  SlipLayout = "regular"
	LayoutStandard SlipLayout = "standard"
	LayoutPremium  SlipLayout = "premium"
	LayoutBasic    SlipLayout = "basic"
)

// ParseLayout falls back to the regular layout for anything it does
// not recognize.
func ParseLayout(s string) SlipLayout {
	switch SlipLayout(s) {
	case LayoutRegular, LayoutStandard, LayoutPremium, LayoutBasic:
		return SlipLayout(s)
	}
	return LayoutRegular
}

// DocumentArtifact is the rendered slip.
type DocumentArtifact struct {
	Layout      SlipLayout `json:"layout"`
	ContentType string     `json:"content_type"`
	Body        []byte     `json:"body"`
}

var slipFuncs = template.FuncMap{
	"na": func(v string) string {
		if isPlaceholder(v) {
			return "N/A"
		}
		return v
	},
	"dash": func(v string) string {
		if isPlaceholder(v) {
			return "-"
		}
		return v
	},
}

const regularSlip = `<!DOCTYPE html>
<html>
<body class="slip slip-regular">
<h2>Identity Verification Slip</h2>
<table>
<tr><td>ID Number</td><td>{{na .IDNumber}}</td></tr>
<tr><td>Surname</td><td>{{na .LastName}}</td></tr>
<tr><td>First Name</td><td>{{na .FirstName}}</td></tr>
<tr><td>Middle Name</td><td>{{na .MiddleName}}</td></tr>
<tr><td>Date of Birth</td><td>{{na .DateOfBirth}}</td></tr>
<tr><td>Gender</td><td>{{na .Gender}}</td></tr>
<tr><td>Phone</td><td>{{na .PhoneNumber}}</td></tr>
<tr><td>Address</td><td>{{na .Address}}</td></tr>
</table>
{{if not (eq .Photo "")}}<img src="data:image/jpeg;base64,{{.Photo}}" alt="photo"/>{{end}}
</body>
</html>`

const standardSlip = `<!DOCTYPE html>
<html>
<body class="slip slip-standard">
<h1>National Identity Slip</h1>
<div class="photo">{{if not (eq .Photo "")}}<img src="data:image/jpeg;base64,{{.Photo}}" alt="photo"/>{{end}}</div>
<table>
<tr><td>ID Number</td><td>{{na .IDNumber}}</td></tr>
<tr><td>Full Name</td><td>{{na .LastName}}, {{na .FirstName}} {{dash .MiddleName}}</td></tr>
<tr><td>Date of Birth</td><td>{{na .DateOfBirth}}</td></tr>
<tr><td>Gender</td><td>{{na .Gender}}</td></tr>
<tr><td>State of Origin</td><td>{{dash .StateOfOrigin}}</td></tr>
<tr><td>LGA of Origin</td><td>{{dash .LGAOfOrigin}}</td></tr>
<tr><td>Nationality</td><td>{{dash .Nationality}}</td></tr>
</table>
</body>
</html>`

const premiumSlip = `<!DOCTYPE html>
<html>
<body class="slip slip-premium">
<h1>Premium Identity Verification</h1>
<div class="photo">{{if not (eq .Photo "")}}<img src="data:image/jpeg;base64,{{.Photo}}" alt="photo"/>{{end}}</div>
<table>
<tr><td>ID Number</td><td>{{na .IDNumber}}</td></tr>
<tr><td>Surname</td><td>{{na .LastName}}</td></tr>
<tr><td>First Name</td><td>{{na .FirstName}}</td></tr>
<tr><td>Middle Name</td><td>{{dash .MiddleName}}</td></tr>
<tr><td>Date of Birth</td><td>{{na .DateOfBirth}}</td></tr>
<tr><td>Gender</td><td>{{na .Gender}}</td></tr>
<tr><td>Phone</td><td>{{dash .PhoneNumber}}</td></tr>
<tr><td>Email</td><td>{{dash .Email}}</td></tr>
<tr><td>Residential Address</td><td>{{dash .Address}}</td></tr>
<tr><td>State of Residence</td><td>{{dash .StateOfResidence}}</td></tr>
<tr><td>LGA of Residence</td><td>{{dash .LGAOfResidence}}</td></tr>
<tr><td>State of Origin</td><td>{{dash .StateOfOrigin}}</td></tr>
<tr><td>LGA of Origin</td><td>{{dash .LGAOfOrigin}}</td></tr>
<tr><td>Nationality</td><td>{{dash .Nationality}}</td></tr>
<tr><td>Marital Status</td><td>{{dash .MaritalStatus}}</td></tr>
<tr><td>Employment Status</td><td>{{dash .EmploymentStatus}}</td></tr>
</table>
</body>
</html>`

const basicSlip = `<!DOCTYPE html>
<html>
<body class="slip slip-basic">
<p>ID: {{na .IDNumber}}</p>
<p>Name: {{na .FirstName}} {{na .LastName}}</p>
<p>DOB: {{na .DateOfBirth}}</p>
</body>
</html>`

var slipTemplates = map[SlipLayout]*template.Template{
	LayoutRegular:  template.Must(template.New(string(LayoutRegular)).Funcs(slipFuncs).Parse(regularSlip)),
	LayoutStandard: template.Must(template.New(string(LayoutStandard)).Funcs(slipFuncs).Parse(standardSlip)),
	LayoutPremium:  template.Must(template.New(string(LayoutPremium)).Funcs(slipFuncs).Parse(premiumSlip)),
	LayoutBasic:    template.Must(template.New(string(LayoutBasic)).Funcs(slipFuncs).Parse(basicSlip)),
}

// RenderSlip substitutes the canonical record into the selected static
// layout. Missing fields come out as placeholders; there is no other
// failure mode.
func RenderSlip(record *identity.Record, layout SlipLayout) *DocumentArtifact {
	if record == nil {
		record = &identity.Record{}
	}

	tmpl, ok := slipTemplates[layout]
	if !ok {
		layout = LayoutRegular
		tmpl = slipTemplates[LayoutRegular]
	}

	var buf bytes.Buffer
	// The only template inputs are plain struct fields; Execute cannot
	// fail on them.
	_ = tmpl.Execute(&buf, record)

	return &DocumentArtifact{
		Layout:      layout,
		ContentType: "text/html; charset=utf-8",
		Body:        buf.Bytes(),
	}
}
