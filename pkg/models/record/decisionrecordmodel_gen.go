package record

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = mon.ErrNotFound

type decisionRecordModel interface {
	Insert(ctx context.Context, data ...*DecisionRecord) error
	FindOne(ctx context.Context, id string) (*DecisionRecord, error)
}

type defaultDecisionRecordModel struct {
	conn *mon.Model
}

func newDefaultDecisionRecordModel(conn *mon.Model) *defaultDecisionRecordModel {
	return &defaultDecisionRecordModel{conn: conn}
}

func (m *defaultDecisionRecordModel) Insert(ctx context.Context, data ...*DecisionRecord) error {
	if len(data) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]any, len(data))
	for i, d := range data {
		d.Stamp(now)
		docs[i] = d
	}

	_, err := m.conn.InsertMany(ctx, docs)
	return err
}

func (m *defaultDecisionRecordModel) FindOne(ctx context.Context, id string) (*DecisionRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var data DecisionRecord
	err = m.conn.FindOne(ctx, &data, primitive.M{"_id": oid})
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
