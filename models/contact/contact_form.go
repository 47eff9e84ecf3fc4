package contact

// Field keys of the contact form.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldCompany  = "company"
	FieldCategory = "category"
	FieldSubject  = "subject"
	FieldMessage  = "message"
)

// Categories are the inquiry types offered by the category select.
var Categories = []Option{
	{Value: "general", Label: "General Inquiry"},
	{Value: "partnership", Label: "Partnership"},
	{Value: "investment", Label: "Investment"},
	{Value: "career", Label: "Career"},
	{Value: "media", Label: "Media & Press"},
}

var contactSchema = MustFormSchema(
	FieldDefinition{
		Key:             FieldName,
		Label:           "Full Name",
		Kind:            KindText,
		Required:        true,
		RequiredMessage: "Name is required",
		Placeholder:     "Enter your full name",
		Constraints: []Constraint{
			MinLength(2, "Name must be at least 2 characters"),
			MaxLength(50, "Name must not exceed 50 characters"),
		},
	},
	FieldDefinition{
		Key:             FieldEmail,
		Label:           "Email",
		Kind:            KindEmail,
		Required:        true,
		RequiredMessage: "Email is required",
		Placeholder:     "name@email.com",
		Constraints: []Constraint{
			EmailShape("Please enter a valid email address"),
		},
	},
	FieldDefinition{
		Key:         FieldPhone,
		Label:       "Phone Number",
		Kind:        KindPhone,
		Placeholder: "+62 xxx xxxx xxxx",
	},
	FieldDefinition{
		Key:         FieldCompany,
		Label:       "Company",
		Kind:        KindText,
		Placeholder: "Company name",
	},
	FieldDefinition{
		Key:                  FieldCategory,
		Label:                "Category",
		Kind:                 KindEnumSelect,
		Required:             true,
		RequiredMessage:      "Please select a category",
		InvalidOptionMessage: "Please select a valid category",
		Placeholder:          "Select category",
		Options:              Categories,
	},
	FieldDefinition{
		Key:             FieldSubject,
		Label:           "Subject",
		Kind:            KindText,
		Required:        true,
		RequiredMessage: "Subject is required",
		Placeholder:     "Message subject",
		Constraints: []Constraint{
			MinLength(5, "Subject must be at least 5 characters"),
			MaxLength(100, "Subject must not exceed 100 characters"),
		},
	},
	FieldDefinition{
		Key:             FieldMessage,
		Label:           "Message",
		Kind:            KindLongText,
		Required:        true,
		RequiredMessage: "Message is required",
		Placeholder:     "Write your message here...",
		Constraints: []Constraint{
			MinLength(10, "Message must be at least 10 characters"),
			MaxLength(1000, "Message must not exceed 1000 characters"),
		},
	},
)

// ContactSchema returns the shared schema of the contact form.
func ContactSchema() *FormSchema {
	return contactSchema
}
