package services

import (
	"context"
	"errors"
	"testing"

	"xestetik/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MediaServiceTestSuite struct {
	suite.Suite
	root   string
	assets AssetService
	remote *MockRemoteMedia
}

func (suite *MediaServiceTestSuite) SetupTest() {
	suite.root = suite.T().TempDir()
	suite.assets = NewAssetService(suite.root, "/static")
	suite.remote = &MockRemoteMedia{}
}

func (suite *MediaServiceTestSuite) TearDownTest() {
	suite.remote.AssertExpectations(suite.T())
}

func TestMediaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MediaServiceTestSuite))
}

func (suite *MediaServiceTestSuite) TestList_LocalFirstThenRemoteDeduped() {
	touch(suite.T(), suite.root, "video/DepiMax.mp4", "video/Akademia.mov")
	suite.remote.On("List", mock.Anything).Return([]models.MediaItem{
		{Title: "zabieg", URL: "https://cdn.example.com/zabieg.mp4", Source: models.MediaSourceRemote},
		{Title: "depimax", URL: "https://cdn.example.com/depimax.mp4", Source: models.MediaSourceRemote},
		{Title: "intro", URL: "https://cdn.example.com/intro.webm", Source: models.MediaSourceRemote},
	}, nil).Once()

	got := NewMediaService(suite.assets, suite.remote, "").List(context.Background())

	want := []models.MediaItem{
		{Title: "Akademia", URL: "/static/video/Akademia.mov", Source: models.MediaSourceLocal},
		{Title: "DepiMax", URL: "/static/video/DepiMax.mp4", Source: models.MediaSourceLocal},
		{Title: "zabieg", URL: "https://cdn.example.com/zabieg.mp4", Source: models.MediaSourceRemote},
		{Title: "intro", URL: "https://cdn.example.com/intro.webm", Source: models.MediaSourceRemote},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		suite.T().Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func (suite *MediaServiceTestSuite) TestList_RemoteErrorKeepsLocal() {
	touch(suite.T(), suite.root, "video/Szkolenie.mp4")
	suite.remote.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()

	got := NewMediaService(suite.assets, suite.remote, "").List(context.Background())

	require.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Szkolenie", got[0].Title)
}

func (suite *MediaServiceTestSuite) TestList_SkipsHeroClip() {
	touch(suite.T(), suite.root, "video/Hero.mp4", "video/Szkolenie.mp4")
	suite.remote.On("List", mock.Anything).Return([]models.MediaItem{
		{Title: "hero", URL: "https://cdn.example.com/hero.webm", Source: models.MediaSourceRemote},
		{Title: "intro", URL: "https://cdn.example.com/intro.webm", Source: models.MediaSourceRemote},
	}, nil).Once()

	service := NewMediaService(suite.assets, suite.remote, "")
	got := service.List(context.Background())

	want := []models.MediaItem{
		{Title: "Szkolenie", URL: "/static/video/Szkolenie.mp4", Source: models.MediaSourceLocal},
		{Title: "intro", URL: "https://cdn.example.com/intro.webm", Source: models.MediaSourceRemote},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		suite.T().Errorf("List mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(suite.T(), "/static/video/Hero.mp4", service.HeroVideo())
}

func (suite *MediaServiceTestSuite) TestList_NoSources() {
	got := NewMediaService(suite.assets, nil, "").List(context.Background())

	assert.NotNil(suite.T(), got)
	assert.Empty(suite.T(), got)
}

func (suite *MediaServiceTestSuite) TestHeroVideo() {
	service := NewMediaService(suite.assets, nil, "")
	assert.Empty(suite.T(), service.HeroVideo())

	touch(suite.T(), suite.root, "video/Hero.webm", "video/hero.mp4")
	assert.Equal(suite.T(), "/static/video/hero.mp4", service.HeroVideo())

	override := NewMediaService(suite.assets, nil, " https://cdn.example.com/hero.mp4 ")
	assert.Equal(suite.T(), "https://cdn.example.com/hero.mp4", override.HeroVideo())
}

func TestStaticRemoteMedia_List(t *testing.T) {
	remote := NewStaticRemoteMedia("https://cdn.example.com/media/", []string{"a clip.mp4", " ", "nested/b.mov"})

	got, err := remote.List(context.Background())

	require.NoError(t, err)
	want := []models.MediaItem{
		{Title: "a clip", URL: "https://cdn.example.com/media/a%20clip.mp4", Source: models.MediaSourceRemote},
		{Title: "b", URL: "https://cdn.example.com/media/nested/b.mov", Source: models.MediaSourceRemote},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestBucketRemoteMedia_PublicBaseURL(t *testing.T) {
	minio := &MockMinioService{}
	minio.On("ListObjects", mock.Anything, "media", "videos/").
		Return([]string{"videos/a.mp4", "videos/cover.jpg", "videos/b.MOV"}, nil).Once()

	got, err := NewBucketRemoteMedia(minio, "media", "videos/", "https://cdn.example.com").List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.MediaItem{
		{Title: "a", URL: "https://cdn.example.com/videos/a.mp4", Source: models.MediaSourceRemote},
		{Title: "b", URL: "https://cdn.example.com/videos/b.MOV", Source: models.MediaSourceRemote},
	}, got)
	minio.AssertExpectations(t)
}

func TestBucketRemoteMedia_PresignsWithoutBaseURL(t *testing.T) {
	minio := &MockMinioService{}
	minio.On("ListObjects", mock.Anything, "media", "").Return([]string{"a.mp4", "b.mp4"}, nil).Once()
	minio.On("GetPresignedURL", mock.Anything, "media", "a.mp4", presignExpiry).Return("https://s3/a?sig=1", nil).Once()
	minio.On("GetPresignedURL", mock.Anything, "media", "b.mp4", presignExpiry).Return("", errors.New("denied")).Once()

	got, err := NewBucketRemoteMedia(minio, "media", "", "").List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://s3/a?sig=1", got[0].URL)
	minio.AssertExpectations(t)
}

func TestBucketRemoteMedia_ListError(t *testing.T) {
	minio := &MockMinioService{}
	minio.On("ListObjects", mock.Anything, "media", "").Return(nil, errors.New("no such bucket")).Once()

	_, err := NewBucketRemoteMedia(minio, "media", "", "").List(context.Background())

	assert.EqualError(t, err, "no such bucket")
}
