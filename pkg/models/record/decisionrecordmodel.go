package record

import "github.com/zeromicro/go-zero/core/stores/mon"

var _ DecisionRecordModel = (*customDecisionRecordModel)(nil)

type (
	// DecisionRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customDecisionRecordModel.
	DecisionRecordModel interface {
		decisionRecordModel
	}

	customDecisionRecordModel struct {
		*defaultDecisionRecordModel
	}
)

// NewDecisionRecordModel returns a model for the mongo.
func NewDecisionRecordModel(url, db, collection string) DecisionRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customDecisionRecordModel{
		defaultDecisionRecordModel: newDefaultDecisionRecordModel(conn),
	}
}
