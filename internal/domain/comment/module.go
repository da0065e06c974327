package comment

import (
	"community_bbs/internal/domain/comment/handler"
	"community_bbs/internal/domain/comment/repository"
	"community_bbs/internal/domain/comment/service"
	"community_bbs/internal/pkg/registry"
)

// CommentModule 评论模块，发表评论走 topic 模块的流程
type CommentModule struct{}

func init() {
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 5
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	commentService := service.NewCommentService(repository.NewCommentRepository(ctx.DB))
	ctx.Services.Comments = commentService

	ctx.Router.GET("/topics/:tid/comments", handler.NewCommentHandler(commentService).ListComments)
	return nil
}
