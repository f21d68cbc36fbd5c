package entity

// BookCondition describes the physical state of a listed book.
type BookCondition string

const (
	ConditionNew     BookCondition = "new"
	ConditionLikeNew BookCondition = "like-new"
	ConditionGood    BookCondition = "good"
	ConditionFair    BookCondition = "fair"
)

// Book is a listed book. Owner name is denormalized from the owning user for
// read convenience.
type Book struct {
	ID           string        `bson:"id" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Author       string        `bson:"author" json:"author"`
	Genre        string        `bson:"genre" json:"genre"`
	Language     string        `bson:"language" json:"language"`
	OwnerID      string        `bson:"ownerId" json:"ownerId"`
	OwnerName    string        `bson:"ownerName" json:"ownerName"`
	Available    bool          `bson:"available" json:"available"`
	Rating       float64       `bson:"rating" json:"rating"`
	Reviews      int           `bson:"reviews" json:"reviews"`
	Description  string        `bson:"description" json:"description"`
	Cover        string        `bson:"cover" json:"cover"`
	Condition    BookCondition `bson:"condition" json:"condition"`
	Location     *Location     `bson:"location,omitempty" json:"location,omitempty"`
	Price        *float64      `bson:"price,omitempty" json:"price,omitempty"`
	IsForSale    bool          `bson:"isForSale" json:"isForSale"`
	OwnerContact string        `bson:"ownerContact,omitempty" json:"ownerContact,omitempty"`
}
