package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is an immutable snapshot of one cart line at placement time.
// Its numeric fields never change afterwards, even if the catalog item does.
type OrderItem struct {
	FoodID   string  `bson:"foodId" json:"foodId"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// PaymentSummary keeps the only card details that may ever be persisted:
// the last four digits and the cardholder name. Full number, expiry and CVV
// are discarded at validation time and never reach the database.
type PaymentSummary struct {
	CardLast4      string `bson:"cardLast4" json:"cardLast4"`
	CardholderName string `bson:"cardholderName" json:"cardholderName"`
}

// Order defines the persisted order document. The generated order id is the
// document key.
type Order struct {
	ID             string             `bson:"_id" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	UserName       string             `bson:"userName" json:"userName"`
	Items          []OrderItem        `bson:"items" json:"items"`
	TotalAmount    float64            `bson:"totalAmount" json:"totalAmount"`
	Status         string             `bson:"status" json:"status"`
	Address        string             `bson:"address" json:"address"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentSummary *PaymentSummary    `bson:"paymentSummary,omitempty" json:"paymentSummary,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
