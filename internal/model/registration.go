package model

// Registration is the value built from a submitted registration form.  It
// has no identity of its own: it is turned into one spreadsheet row and
// then discarded.  The rules checkbox travels beside it and is never
// stored.
//
// Fields:
//  FullName      – visitor's full name.
//  Email         – contact email (not validated).
//  ContactNumber – phone number (not validated).
//  RollNumber    – student roll number.
//  Department    – academic department.
//  EventName     – name of the catalog event being registered for.
type Registration struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	RollNumber    string `json:"roll_number"`
	Department    string `json:"department"`
	EventName     string `json:"event"`
}

// RowWidth is the number of columns a registration occupies in the row store.
const RowWidth = 6

// Row returns the registration as one row in column order.
func (r Registration) Row() []string {
	return []string{r.FullName, r.Email, r.ContactNumber, r.RollNumber, r.Department, r.EventName}
}
