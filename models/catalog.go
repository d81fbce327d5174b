package models

// Package is a priced, named bundle of deliverables a client selects.
type Package struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Price       Money    `bson:"price" json:"price"`
	Duration    string   `bson:"duration" json:"duration"`       // Display label, e.g. "2 hours"
	Features    []string `bson:"features" json:"features"`       // Ordered feature list
	Recommended bool     `bson:"recommended" json:"recommended"`
}

// AddOn is an optional priced extra, independently selectable.
type AddOn struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Price Money  `bson:"price" json:"price"`
}
