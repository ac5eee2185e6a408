package model

// ApplicantFixtures 返回十条预置申请人记录（不含ID）
func ApplicantFixtures() []Applicant {
	return []Applicant{
		{FirstName: "Alice", LastName: "Johnson", DoB: "1992-06-15", Gender: "Female", ResidencyState: "Idaho", IsActive: true},
		{FirstName: "Bob", LastName: "Smith", DoB: "1988-11-22", Gender: "Male", ResidencyState: "Idaho", IsActive: false},
		{FirstName: "Charlie", LastName: "Brown", DoB: "1995-04-08", Gender: "Non-binary", ResidencyState: "Idaho", IsActive: true},
		{FirstName: "Diana", LastName: "King", DoB: "1980-07-30", Gender: "Female", ResidencyState: "Idaho", IsActive: true},
		{FirstName: "Edward", LastName: "White", DoB: "1999-02-14", Gender: "Male", ResidencyState: "Idaho", IsActive: false},
		{FirstName: "Fiona", LastName: "Adams", DoB: "1993-09-27", Gender: "Female", ResidencyState: "Idaho", IsActive: true},
		{FirstName: "George", LastName: "Hill", DoB: "1985-12-03", Gender: "Male", ResidencyState: "Idaho", IsActive: true},
		{FirstName: "Hannah", LastName: "Scott", DoB: "2000-05-19", Gender: "Female", ResidencyState: "Idaho", IsActive: false},
		{FirstName: "Isaac", LastName: "Thomas", DoB: "1997-03-10", Gender: "Male", ResidencyState: "Idaho", IsActive: true},
		{FirstName: "Julia", LastName: "Martin", DoB: "1990-08-25", Gender: "Female", ResidencyState: "Idaho", IsActive: true},
	}
}

// ContactFixtures 返回十条预置联系人记录（不含ID）
func ContactFixtures() []Contact {
	return []Contact{
		{FirstName: "Alice", LastName: "Johnson", Phone: "555-123-4567", Relationship: "Parent"},
		{FirstName: "Bob", LastName: "Smith", Phone: "555-234-5678", Relationship: "Guardian"},
		{FirstName: "Charlie", LastName: "Brown", Phone: "555-345-6789", Relationship: "Sibling"},
		{FirstName: "Diana", LastName: "King", Phone: "555-456-7890", Relationship: "Spouse"},
		{FirstName: "Edward", LastName: "White", Phone: "555-567-8901", Relationship: "Parent"},
		{FirstName: "Fiona", LastName: "Adams", Phone: "555-678-9012", Relationship: "Guardian"},
		{FirstName: "George", LastName: "Hill", Phone: "555-789-0123", Relationship: "Sibling"},
		{FirstName: "Hannah", LastName: "Scott", Phone: "555-890-1234", Relationship: "Parent"},
		{FirstName: "Isaac", LastName: "Thomas", Phone: "555-901-2345", Relationship: "Guardian"},
		{FirstName: "Julia", LastName: "Martin", Phone: "555-012-3456", Relationship: "Spouse"},
	}
}

// AddressFixtures 地址没有预置数据
func AddressFixtures() []Address {
	return nil
}
