package cart

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// document is the persisted cart layout: one document per user, keyed by the
// user id, rewritten whole after every mutation.
type document struct {
	UserID    primitive.ObjectID `bson:"_id"`
	Lines     []Line             `bson:"lines"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// Store persists carts in the "carts" collection.
type Store struct {
	col *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{col: db.Collection("carts")}
}

// Load reads the user's cart. A missing or undecodable document yields an
// empty cart; malformed state is logged but never surfaced as a failure.
func (s *Store) Load(ctx context.Context, userID primitive.ObjectID) *Cart {
	var doc document
	err := s.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return &Cart{}
	}
	if err != nil {
		log.Println("[CART] [WARN] cart load failed, starting empty:", err)
		return &Cart{}
	}

	lines := make([]Line, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		// Tolerate hand-edited or legacy documents: drop lines that violate
		// the engine's invariants instead of rejecting the whole cart.
		if line.ItemID == "" || line.Quantity < 1 || line.UnitPrice < 0 {
			log.Println("[CART] [WARN] dropping malformed cart line for item:", line.ItemID)
			continue
		}
		lines = append(lines, line)
	}

	return &Cart{Lines: lines}
}

// Save rewrites the user's cart document in full.
func (s *Store) Save(ctx context.Context, userID primitive.ObjectID, c *Cart) error {
	doc := document{
		UserID:    userID,
		Lines:     c.Lines,
		UpdatedAt: time.Now(),
	}

	_, err := s.col.ReplaceOne(
		ctx,
		bson.M{"_id": userID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Clear persists an empty cart for the user.
func (s *Store) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return s.Save(ctx, userID, &Cart{})
}
