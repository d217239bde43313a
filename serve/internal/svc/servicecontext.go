package svc

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/pusher"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/record"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/player"
	"github.com/HuXin0817/dots-and-boxes-engine/serve/internal/config"
)

type ServiceContext struct {
	Config config.Config
	Player *player.Player
	// Journal is nil when no Mongo is configured.
	Journal *pusher.Pusher[*record.DecisionRecord]
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{
		Config: c,
		Player: player.NewPlayer(c.Engine),
	}

	if c.MongoConf.Url == "" {
		return svcCtx
	}

	url := c.MongoConf.Url
	if strings.Contains(url, "%s") {
		url = fmt.Sprintf(url, c.MongoConf.PassWord)
	}
	model := record.NewDecisionRecordModel(url, c.MongoConf.DataBaseName, c.MongoConf.Collection)
	svcCtx.Journal = NewJournal(model, c)
	svcCtx.Journal.Start()
	return svcCtx
}

// NewJournal batches decision records into model.
func NewJournal(model record.DecisionRecordModel, c config.Config) *pusher.Pusher[*record.DecisionRecord] {
	return pusher.NewPusher(
		pusher.WithPushInterval[*record.DecisionRecord](c.MongoConf.PushInterval),
		pusher.WithPushLogic(func(records ...*record.DecisionRecord) error {
			return model.Insert(context.Background(), records...)
		}),
		pusher.WithErrorHandler[*record.DecisionRecord](func(err error) {
			logx.Errorf("journal: %v", err)
		}),
	)
}

func (s *ServiceContext) Close() {
	if s.Journal != nil {
		s.Journal.Stop()
	}
}
