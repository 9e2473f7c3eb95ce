package contact

import "testing"

func TestRequiredPresent(t *testing.T) {
	t.Parallel()

	valid := FormFields{GivenName: "Ana", FamilyName: "Lopez", Email: "ana@example.com", Message: "Hola"}

	tests := []struct {
		name   string
		mutate func(f *FormFields)
		want   bool
	}{
		{name: "all required present", mutate: func(f *FormFields) {}, want: true},
		{name: "optional fields may be empty", mutate: func(f *FormFields) { f.Phone = ""; f.Company = "" }, want: true},
		{name: "missing given name", mutate: func(f *FormFields) { f.GivenName = "" }, want: false},
		{name: "missing family name", mutate: func(f *FormFields) { f.FamilyName = "" }, want: false},
		{name: "missing email", mutate: func(f *FormFields) { f.Email = "" }, want: false},
		{name: "missing message", mutate: func(f *FormFields) { f.Message = "" }, want: false},
		{name: "whitespace-only message", mutate: func(f *FormFields) { f.Message = "   \t\n" }, want: false},
		{name: "whitespace-only given name", mutate: func(f *FormFields) { f.GivenName = "  " }, want: false},
		{name: "padded values still count", mutate: func(f *FormFields) { f.GivenName = "  Ana  " }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := valid
			tt.mutate(&f)
			if got := requiredPresent(f); got != tt.want {
				t.Errorf("requiredPresent(%+v) = %v, want %v", f, got, tt.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "plain address", value: "ana@example.com", want: true},
		{name: "subdomain", value: "ana@mail.example.com", want: true},
		{name: "plus tag", value: "ana+site@example.com", want: true},
		{name: "surrounding whitespace trimmed", value: "  ana@example.com  ", want: true},
		{name: "no at sign", value: "ana.example.com", want: false},
		{name: "no dot after at", value: "ana@example", want: false},
		{name: "two at signs", value: "ana@@example.com", want: false},
		{name: "space inside", value: "ana lopez@example.com", want: false},
		{name: "empty", value: "", want: false},
		{name: "only whitespace", value: "   ", want: false},
		{name: "single-letter tld is allowed", value: "ana@example.c", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidEmail(tt.value); got != tt.want {
				t.Errorf("ValidEmail(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
