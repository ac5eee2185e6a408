package sqldb

import (
	"github.com/LENAX/ppm/pkg/model"
	"github.com/LENAX/ppm/pkg/storage/dao"
)

// ContactTable contact表，列名与原有contacts.db一致
func ContactTable() *Table[model.Contact, dao.ContactDAO] {
	return &Table[model.Contact, dao.ContactDAO]{
		Name:     "contact",
		IDColumn: "Contact_ID",
		Columns: []Column{
			{Name: "First_Name"},
			{Name: "Last_Name"},
			{Name: "Phone"},
			{Name: "Applicant_Relationship"},
		},
		ToDAO: func(c model.Contact) dao.ContactDAO {
			return dao.ContactDAO{
				ID:           c.ID,
				FirstName:    c.FirstName,
				LastName:     c.LastName,
				Phone:        c.Phone,
				Relationship: c.Relationship,
			}
		},
		FromDAO: func(d dao.ContactDAO) model.Contact {
			return model.Contact{
				ID:           d.ID,
				FirstName:    d.FirstName,
				LastName:     d.LastName,
				Phone:        d.Phone,
				Relationship: d.Relationship,
			}
		},
		Fixtures: model.ContactFixtures(),
	}
}

// ApplicantTable applicant表
func ApplicantTable() *Table[model.Applicant, dao.ApplicantDAO] {
	return &Table[model.Applicant, dao.ApplicantDAO]{
		Name:     "applicant",
		IDColumn: "Applicant_ID",
		Columns: []Column{
			{Name: "FirstName"},
			{Name: "LastName"},
			{Name: "DoB"},
			{Name: "Gender"},
			{Name: "ResidencyState"},
			{Name: "IsActive", Kind: KindBoolean},
		},
		ToDAO: func(a model.Applicant) dao.ApplicantDAO {
			return dao.ApplicantDAO{
				ID:             a.ID,
				FirstName:      a.FirstName,
				LastName:       a.LastName,
				DoB:            a.DoB,
				Gender:         a.Gender,
				ResidencyState: a.ResidencyState,
				IsActive:       a.IsActive,
			}
		},
		FromDAO: func(d dao.ApplicantDAO) model.Applicant {
			return model.Applicant{
				ID:             d.ID,
				FirstName:      d.FirstName,
				LastName:       d.LastName,
				DoB:            d.DoB,
				Gender:         d.Gender,
				ResidencyState: d.ResidencyState,
				IsActive:       d.IsActive,
			}
		},
		Fixtures: model.ApplicantFixtures(),
	}
}

// AddressTable address表，OwnerID不建外键
func AddressTable() *Table[model.Address, dao.AddressDAO] {
	return &Table[model.Address, dao.AddressDAO]{
		Name:     "address",
		IDColumn: "Address_ID",
		Columns: []Column{
			{Name: "Street_No"},
			{Name: "Street"},
			{Name: "City"},
			{Name: "State"},
			{Name: "Zip"},
			{Name: "Type"},
			{Name: "OwnerID", Kind: KindInteger},
			{Name: "OwnerType"},
		},
		ToDAO: func(a model.Address) dao.AddressDAO {
			return dao.AddressDAO{
				ID:        a.ID,
				StreetNo:  a.StreetNo,
				Street:    a.Street,
				City:      a.City,
				State:     a.State,
				Zip:       a.Zip,
				Type:      a.Type,
				OwnerID:   a.OwnerID,
				OwnerType: a.OwnerType,
			}
		},
		FromDAO: func(d dao.AddressDAO) model.Address {
			return model.Address{
				ID:        d.ID,
				StreetNo:  d.StreetNo,
				Street:    d.Street,
				City:      d.City,
				State:     d.State,
				Zip:       d.Zip,
				Type:      d.Type,
				OwnerID:   d.OwnerID,
				OwnerType: d.OwnerType,
			}
		},
		Fixtures: model.AddressFixtures(),
	}
}
