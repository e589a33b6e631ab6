package repositories_test

import (
	"testing"
	"time"

	"caremarket/internal/models"
	"caremarket/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGroupDB(t *testing.T) *repositories.GORMGroupRepository {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Group{}, &models.GroupPost{}))
	return repositories.NewGORMGroupRepository(db)
}

func TestGORMGroupRepository_CreateSeedsCounters(t *testing.T) {
	repo := setupGroupDB(t)

	group := &models.Group{Name: "Dementia Caregivers", CreatedBy: "user-1"}
	assert.NoError(t, repo.Create(group))
	assert.NotEmpty(t, group.ID)

	stored, err := repo.GetByID(group.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.MemberCount)
	assert.Equal(t, 0, stored.PostCount)
}

func TestGORMGroupRepository_PostCountFollowsPosts(t *testing.T) {
	repo := setupGroupDB(t)

	group := &models.Group{Name: "Respite Care Tips", CreatedBy: "user-1"}
	assert.NoError(t, repo.Create(group))

	first := &models.GroupPost{GroupID: group.ID, Content: "hello", AuthorID: "user-1"}
	second := &models.GroupPost{GroupID: group.ID, Content: "welcome", AuthorID: "user-2"}
	assert.NoError(t, repo.AddPost(first))
	assert.NoError(t, repo.AddPost(second))

	stored, err := repo.GetByID(group.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, stored.PostCount)

	assert.NoError(t, repo.DeletePost(group.ID, first.ID))

	stored, err = repo.GetByID(group.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.PostCount)

	posts, err := repo.GetPosts(group.ID)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, second.ID, posts[0].ID)
}

func TestGORMGroupRepository_PostsNewestFirst(t *testing.T) {
	repo := setupGroupDB(t)

	group := &models.Group{Name: "New Caregivers", CreatedBy: "user-1"}
	assert.NoError(t, repo.Create(group))

	older := &models.GroupPost{
		GroupID:   group.ID,
		Content:   "first post",
		AuthorID:  "user-1",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &models.GroupPost{GroupID: group.ID, Content: "second post", AuthorID: "user-1"}
	assert.NoError(t, repo.AddPost(older))
	assert.NoError(t, repo.AddPost(newer))

	posts, err := repo.GetPosts(group.ID)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestGORMGroupRepository_PostInUnknownGroup(t *testing.T) {
	repo := setupGroupDB(t)

	post := &models.GroupPost{GroupID: "missing", Content: "hello", AuthorID: "user-1"}
	err := repo.AddPost(post)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
