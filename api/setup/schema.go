package setup

import (
	"fmt"

	"github.com/sociable/sociableapi/api/admin"
	"github.com/sociable/sociableapi/api/chat"
	"github.com/sociable/sociableapi/api/friend"
	"github.com/sociable/sociableapi/api/game"
	"github.com/sociable/sociableapi/api/group"
	"github.com/sociable/sociableapi/api/page"
	"github.com/sociable/sociableapi/api/post"
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/shared/zaplogger"
	"gorm.io/gorm"
)

// Migrate applies the relational schema. AutoMigrate creates missing
// tables and adds missing columns; it never drops existing data.
func Migrate(db *gorm.DB) error {
	zaplogger.Info("  * checking tables")

	err := db.AutoMigrate(
		&user.UserModel{},
		&post.PostModel{},
		&post.LikeModel{},
		&post.CommentModel{},
		&friend.FriendshipModel{},
		&chat.ChatMessageModel{},
		&group.GroupModel{},
		&group.GroupMemberModel{},
		&page.PageModel{},
		&page.PageFollowerModel{},
		&game.GameModel{},
		&admin.StatsSnapshotModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate: %v", err)
	}

	return verifyTables(db)
}

func verifyTables(db *gorm.DB) error {
	tables := []struct {
		name  string
		model interface{}
	}{
		{user.UsersTableName, &user.UserModel{}},
		{post.PostsTableName, &post.PostModel{}},
		{post.LikesTableName, &post.LikeModel{}},
		{post.CommentsTableName, &post.CommentModel{}},
		{friend.FriendshipsTableName, &friend.FriendshipModel{}},
		{chat.ChatMessagesTableName, &chat.ChatMessageModel{}},
		{group.GroupsTableName, &group.GroupModel{}},
		{group.GroupMembersTableName, &group.GroupMemberModel{}},
		{page.PagesTableName, &page.PageModel{}},
		{page.PageFollowersTableName, &page.PageFollowerModel{}},
		{game.GamesTableName, &game.GameModel{}},
		{admin.StatsSnapshotsTableName, &admin.StatsSnapshotModel{}},
	}

	for _, table := range tables {
		if db.Migrator().HasTable(table.model) {
			zaplogger.Info("    - " + table.name + " ✔")
		} else {
			return fmt.Errorf("failed to create table: %s", table.name)
		}
	}

	return nil
}
