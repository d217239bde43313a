package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/player"
)

type Config struct {
	Name     string `json:",default=serve"`
	ListenOn string `json:",default=0.0.0.0:8000"`
	Mode     string `json:",default=pro,options=dev|test|rt|pre|pro"`
	Log      logx.LogConf
	Engine   player.Config
	// MongoConf enables the decision journal when Url is set. A %s in Url is
	// replaced by PassWord.
	MongoConf struct {
		Url          string        `json:",optional"`
		DataBaseName string        `json:",default=dots_and_boxes"`
		Collection   string        `json:",default=decisions"`
		PassWord     string        `json:",optional,env=MONGO_PASSWORD"`
		PushInterval time.Duration `json:",default=1s"`
	}
}
