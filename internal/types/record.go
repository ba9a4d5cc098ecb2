package types

// Record is the persisted catalog entry. The id is assigned by the
// caller at creation time and never changes afterwards.
type Record struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	PageCount   int    `gorm:"not null;column:page_count" json:"pageCount"`
}

func (Record) TableName() string {
	return "record"
}
