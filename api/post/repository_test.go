package post

import (
	"testing"

	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (*Repository, user.UserModel) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&user.UserModel{}, &PostModel{}, &LikeModel{}, &CommentModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	author := user.UserModel{Username: "alice", Email: "alice@example.com", Password: "x", FirstName: "Alice", LastName: "A"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	provider := database.NewProvider()
	provider.Set(db)
	return NewRepository(provider), author
}

func TestLikeMaintainsCount(t *testing.T) {
	repo, author := newTestRepo(t)

	p := PostModel{UserID: author.ID, Content: "hello"}
	if err := repo.Create(&p); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	liked, err := repo.IsLiked(author.ID, p.ID)
	if err != nil {
		t.Fatalf("IsLiked returned error: %v", err)
	}
	if liked {
		t.Fatal("IsLiked true before any like")
	}

	if err := repo.CreateLike(author.ID, p.ID); err != nil {
		t.Fatalf("CreateLike returned error: %v", err)
	}
	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.LikesCount != 1 {
		t.Errorf("LikesCount after like = %d, want 1", got.LikesCount)
	}
	if liked, _ := repo.IsLiked(author.ID, p.ID); !liked {
		t.Error("IsLiked false after like")
	}

	if err := repo.DeleteLike(author.ID, p.ID); err != nil {
		t.Fatalf("DeleteLike returned error: %v", err)
	}
	got, err = repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.LikesCount != 0 {
		t.Errorf("LikesCount after unlike = %d, want 0", got.LikesCount)
	}
	if liked, _ := repo.IsLiked(author.ID, p.ID); liked {
		t.Error("IsLiked true after unlike")
	}
}

func TestCommentMaintainsCount(t *testing.T) {
	repo, author := newTestRepo(t)

	p := PostModel{UserID: author.ID, Content: "hello"}
	if err := repo.Create(&p); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	comment := CommentModel{UserID: author.ID, PostID: p.ID, Content: "first"}
	if err := repo.CreateComment(&comment); err != nil {
		t.Fatalf("CreateComment returned error: %v", err)
	}

	got, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.CommentsCount != 1 {
		t.Errorf("CommentsCount = %d, want 1", got.CommentsCount)
	}

	comments, err := repo.ListComments(p.ID)
	if err != nil {
		t.Fatalf("ListComments returned error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("ListComments returned %d comments, want 1", len(comments))
	}
	if comments[0].Content != "first" {
		t.Errorf("comment content = %q, want %q", comments[0].Content, "first")
	}
	if comments[0].User.Username != "alice" {
		t.Errorf("comment author = %q, want alice", comments[0].User.Username)
	}
}

func TestListAttachesAuthors(t *testing.T) {
	repo, author := newTestRepo(t)

	for _, content := range []string{"one", "two"} {
		if err := repo.Create(&PostModel{UserID: author.ID, Content: content}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	posts, err := repo.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("List returned %d posts, want 2", len(posts))
	}
	for _, p := range posts {
		if p.User.ID != author.ID || p.User.Username != "alice" {
			t.Errorf("post %d author = %+v, want alice", p.ID, p.User)
		}
	}

	byUser, err := repo.ListByUser(author.ID)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("ListByUser returned %d posts, want 2", len(byUser))
	}
}

func TestDeleteReportsMissingPost(t *testing.T) {
	repo, author := newTestRepo(t)

	p := PostModel{UserID: author.ID, Content: "hello"}
	if err := repo.Create(&p); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	deleted, err := repo.Delete(p.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !deleted {
		t.Error("Delete reported no rows for an existing post")
	}

	deleted, err = repo.Delete(p.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted {
		t.Error("Delete reported rows for a missing post")
	}
}
