package builder

import (
	"daily-idea-job/internal/controllers/job"
	"daily-idea-job/internal/pipeline"
)

// AppHandlers は生成されたすべての HTTP ハンドラーを保持する構造体です。
// server パッケージはこの構造体を受け取ってルーティングを行います。
type AppHandlers struct {
	Job *job.Handler
}

// BuildHandlers はジョブのパイプラインを組み立て、AppHandlers 構造体を返します。
func BuildHandlers(appCtx *AppContext) *AppHandlers {
	ideaPipeline := pipeline.NewIdeaPipeline(appCtx.Generator, appCtx.Relay, appCtx.SlackNotifier)
	return &AppHandlers{
		Job: job.NewHandler(ideaPipeline),
	}
}
