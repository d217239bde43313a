package record

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

// DecisionRecord is one served move. Records are only ever written.
type DecisionRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid `bson:"gameUid" json:"gameUid"`
	Width     int             `bson:"width" json:"width"`
	Height    int             `bson:"height" json:"height"`
	Player    int             `bson:"player" json:"player"`
	Move      string          `bson:"move" json:"move"`
	Source    string          `bson:"source" json:"source"`
	Depth     int             `bson:"depth" json:"depth"`
	Value     float64         `bson:"value" json:"value"`
	Nodes     int64           `bson:"nodes" json:"nodes"`
	ElapsedMs int64           `bson:"elapsedMs" json:"elapsedMs"`
}

// Stamp fills the id and timestamps of a record that has none yet.
func (r *DecisionRecord) Stamp(now time.Time) {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
		r.CreateAt = now
	}
	r.UpdateAt = now
}
