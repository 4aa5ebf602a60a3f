package models

// Person represents a row of the CMS 'humo_persons' table using GORM.
// Only the columns read by the export are mapped.
type Person struct {
	ID           uint   `gorm:"column:pers_id;primaryKey;autoIncrement"`
	TreeID       uint   `gorm:"column:pers_tree_id;not null;index"`
	GedcomNumber string `gorm:"column:pers_gedcomnumber;size:20"`
	Famc         string `gorm:"column:pers_famc;size:50"`  // parent family
	Fams         string `gorm:"column:pers_fams;size:150"` // own families, ';' separated
	OwnCode      string `gorm:"column:pers_own_code"`
	FirstName    string `gorm:"column:pers_firstname"`
	Prefix       string `gorm:"column:pers_prefix"` // e.g. "van_der", '_' stands for a space
	LastName     string `gorm:"column:pers_lastname"`
	Patronym     string `gorm:"column:pers_patronym"`
	BirthDate    string `gorm:"column:pers_birth_date;size:35"` // free-form GEDCOM date
	DeathDate    string `gorm:"column:pers_death_date;size:35"`
	Text         string `gorm:"column:pers_text;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "humo_persons"
}
