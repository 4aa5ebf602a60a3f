package models

// Tree represents a family tree in the 'humo_trees' table.
type Tree struct {
	ID     uint   `gorm:"column:tree_id;primaryKey;autoIncrement" json:"id"`
	Prefix string `gorm:"column:tree_prefix;size:20;uniqueIndex;not null" json:"prefix"`
	Order  int    `gorm:"column:tree_order" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Tree) TableName() string {
	return "humo_trees"
}
