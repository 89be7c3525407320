package user

import (
	"context"
	"errors"
	"time"

	"microblog/internal/common"
	"microblog/internal/dbmysql"
)

// PostCounter is the slice of the post repository the profile page
// needs.
type PostCounter interface {
	CountByAuthor(ctx context.Context, userID uint64) (int64, error)
}

// Profile is a user together with the counters shown on their page.
type Profile struct {
	User           *dbmysql.User `json:"user"`
	PostCount      int64         `json:"post_count"`
	FollowerCount  int64         `json:"follower_count"`
	FollowingCount int64         `json:"following_count"`
	// Following reports whether the viewing user follows this one;
	// false when there is no viewer.
	Following bool `json:"following"`
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	Profile(ctx context.Context, viewerID uint64, username string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uint64, username, aboutMe string) error
	TouchLastSeen(ctx context.Context, userID uint64) error
	Follow(ctx context.Context, userID uint64, username string) error
	Unfollow(ctx context.Context, userID uint64, username string) error
}

var (
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type userService struct {
	userRepo   UserRepository
	followRepo FollowRepository
	posts      PostCounter
}

func NewUserService(userRepo UserRepository, followRepo FollowRepository, posts PostCounter) UserService {
	return &userService{userRepo: userRepo, followRepo: followRepo, posts: posts}
}

func (s *userService) Register(ctx context.Context, username, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	taken, err := s.userRepo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", errors.New("username already exists")
	}

	taken, err = s.userRepo.EmailTaken(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", errors.New("email already registered")
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", errors.New("username and password required")
	}

	user, err := s.userRepo.ByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := common.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) Profile(ctx context.Context, viewerID uint64, username string) (*Profile, error) {
	user, err := s.userRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	postCount, err := s.posts.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.FollowerCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.FollowingCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		User:           user,
		PostCount:      postCount,
		FollowerCount:  followers,
		FollowingCount: following,
	}

	if viewerID != 0 && viewerID != user.ID {
		profile.Following, err = s.followRepo.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint64, username, aboutMe string) error {
	if err := common.ValidateUsername(username); err != nil {
		return err
	}
	if err := common.ValidateAboutMe(aboutMe); err != nil {
		return err
	}

	user, err := s.userRepo.ByID(ctx, userID)
	if err != nil {
		return err
	}

	if username != user.Username {
		taken, err := s.userRepo.UsernameTaken(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return errors.New("username already exists")
		}
	}

	user.Username = username
	user.AboutMe = aboutMe
	return s.userRepo.Update(ctx, user)
}

func (s *userService) TouchLastSeen(ctx context.Context, userID uint64) error {
	return s.userRepo.TouchLastSeen(ctx, userID, time.Now().UTC())
}

// Follow adds a follow edge toward username. Self-follow is rejected
// here, not in the graph. Following someone you already follow is a
// no-op.
func (s *userService) Follow(ctx context.Context, userID uint64, username string) error {
	target, err := s.userRepo.ByUsername(ctx, username)
	if err != nil {
		return err
	}
	if target.ID == userID {
		return ErrSelfFollow
	}
	return s.followRepo.Follow(ctx, userID, target.ID)
}

func (s *userService) Unfollow(ctx context.Context, userID uint64, username string) error {
	target, err := s.userRepo.ByUsername(ctx, username)
	if err != nil {
		return err
	}
	if target.ID == userID {
		return ErrSelfFollow
	}
	return s.followRepo.Unfollow(ctx, userID, target.ID)
}
