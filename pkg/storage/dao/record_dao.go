package dao

// ContactDAO contact表的数据访问对象（内部使用）
// 列名沿用既有contacts.db的命名
type ContactDAO struct {
	ID           int64  `db:"Contact_ID"`
	FirstName    string `db:"First_Name"`
	LastName     string `db:"Last_Name"`
	Phone        string `db:"Phone"`
	Relationship string `db:"Applicant_Relationship"`
}

// ApplicantDAO applicant表的数据访问对象（内部使用）
type ApplicantDAO struct {
	ID             int64  `db:"Applicant_ID"`
	FirstName      string `db:"FirstName"`
	LastName       string `db:"LastName"`
	DoB            string `db:"DoB"`
	Gender         string `db:"Gender"`
	ResidencyState string `db:"ResidencyState"`
	IsActive       bool   `db:"IsActive"`
}

// AddressDAO address表的数据访问对象（内部使用）
type AddressDAO struct {
	ID        int64  `db:"Address_ID"`
	StreetNo  string `db:"Street_No"`
	Street    string `db:"Street"`
	City      string `db:"City"`
	State     string `db:"State"`
	Zip       string `db:"Zip"`
	Type      string `db:"Type"`
	OwnerID   int64  `db:"OwnerID"`
	OwnerType string `db:"OwnerType"`
}

// SeedMarkerDAO seed_marker表的数据访问对象（内部使用）
type SeedMarkerDAO struct {
	TableName string `db:"table_name"`
	SeededAt  string `db:"seeded_at"`
	Rows      int    `db:"seeded_rows"`
}
