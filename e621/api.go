package e621

import (
	"context"
)

// API defines the interface for e621 operations
type API interface {
	// TestConnection verifies the client can reach e621
	TestConnection(ctx context.Context) error

	// Posts
	ListPosts(ctx context.Context, opts ListPostsOptions) (*Response, error)
	CreatePost(ctx context.Context, file, tags, rating, source string, opts CreatePostOptions) (*Response, error)
	VotePost(ctx context.Context, postID int, score string, opts VoteOptions) (*Response, error)
	FavoritePost(ctx context.Context, postID int, favorite bool) (*Response, error)
	DeletePost(ctx context.Context, postID int, opts DeletePostOptions) (*Response, error)
	DestroyPost(ctx context.Context, postID int) (*Response, error)
	UpdatePost(ctx context.Context, postID int, opts UpdatePostOptions) (*Response, error)

	// Flags
	ListFlags(ctx context.Context, opts ListFlagsOptions) (*Response, error)
	CreateFlag(ctx context.Context, postID int, reason string, opts CreateFlagOptions) (*Response, error)

	// Tags
	ListTags(ctx context.Context, opts ListTagsOptions) (*Response, error)
	ListTagAliases(ctx context.Context, opts ListTagAliasesOptions) (*Response, error)
	ListTagImplications(ctx context.Context, opts ListTagImplicationsOptions) (*Response, error)

	// Notes
	ListNotes(ctx context.Context, opts ListNotesOptions) (*Response, error)
	CreateNote(ctx context.Context, postID int, note Note) (*Response, error)
	UpdateNote(ctx context.Context, noteID int, note Note) (*Response, error)
	DeleteNote(ctx context.Context, noteID int) (*Response, error)
	RevertNote(ctx context.Context, noteID, versionID int) (*Response, error)

	// Pools
	ListPools(ctx context.Context, opts ListPoolsOptions) (*Response, error)
	CreatePool(ctx context.Context, name string, category PoolCategory, opts CreatePoolOptions) (*Response, error)
	UpdatePool(ctx context.Context, poolID int, opts UpdatePoolOptions) (*Response, error)
	RevertPool(ctx context.Context, poolID, versionID int) (*Response, error)

	// Accounts
	ListUsers(ctx context.Context, opts ListUsersOptions) (*Response, error)
	GetUser(ctx context.Context, name string) (*Response, error)

	// Other listings
	ListWikiPages(ctx context.Context, opts ListWikiPagesOptions) (*Response, error)
	ListPostSets(ctx context.Context, opts ListPostSetsOptions) (*Response, error)
	ListBlips(ctx context.Context, opts ListBlipsOptions) (*Response, error)
	ListUserFeedback(ctx context.Context, opts ListUserFeedbackOptions) (*Response, error)
	ListForumTopics(ctx context.Context, opts ListForumTopicsOptions) (*Response, error)
}

var _ API = (*Client)(nil)
