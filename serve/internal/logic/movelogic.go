package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/record"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/svc"
)

type MoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveLogic {
	return &MoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Move chooses a move for in and journals the decision.
func (l *MoveLogic) Move(in message.GameState) (*message.MoveResponse, error) {
	uid := message.GameUidOr(in.GameUid)
	ctx := logx.ContextWithFields(l.ctx, logx.Field("game", uid))

	d, err := l.svcCtx.Player.Decide(ctx, in.Snapshot())
	if err != nil {
		return nil, err
	}

	resp := &message.MoveResponse{
		Row:         d.Move.Row,
		Col:         d.Move.Col,
		Orientation: d.Move.Orientation.String(),
		Source:      string(d.Source),
		Depth:       d.Depth,
		Value:       d.Value,
		Nodes:       d.Stats.Nodes,
		ElapsedMs:   d.Elapsed.Milliseconds(),
		GameUid:     uid,
	}

	if l.svcCtx.Journal != nil {
		l.svcCtx.Journal.AddMessages(NewDecisionRecord(in, resp))
	}
	return resp, nil
}

func NewDecisionRecord(in message.GameState, resp *message.MoveResponse) *record.DecisionRecord {
	return &record.DecisionRecord{
		GameUid:   resp.GameUid,
		Width:     in.BoardSize[0],
		Height:    in.BoardSize[1],
		Player:    in.YourPlayerID,
		Move:      resp.Move().String(),
		Source:    resp.Source,
		Depth:     resp.Depth,
		Value:     resp.Value,
		Nodes:     resp.Nodes,
		ElapsedMs: resp.ElapsedMs,
	}
}
