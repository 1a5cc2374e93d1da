package services

import (
	"context"
	"fmt"
	"html"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/PaiAmitha/zap-it-delivery-dashboard/models"
	"github.com/PaiAmitha/zap-it-delivery-dashboard/utils"
)

type UserService struct {
	UserCollection *mongo.Collection
}

func NewUserService(client *mongo.Client, dbName string) *UserService {
	return &UserService{
		UserCollection: client.Database(dbName).Collection("users"),
	}
}

// RegisterUser stores a new user with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, user models.User) error {
	var existing models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing); err == nil {
		return fmt.Errorf("user with email already exists")
	}

	user.Username = html.EscapeString(user.Username)
	user.Name = html.EscapeString(user.Name)
	user.LastName = html.EscapeString(user.LastName)
	user.Email = html.EscapeString(user.Email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hashedPassword)
	user.IsActive = true
	if user.Role == "" {
		user.Role = "viewer"
	}

	if _, err := s.UserCollection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %v", err)
	}
	return nil
}

// LoginUser verifies credentials and issues a signed token carrying the
// user's role.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil, fmt.Errorf("invalid email or password")
		}
		return "", nil, fmt.Errorf("failed to look up user: %v", err)
	}
	if !user.IsActive {
		return "", nil, fmt.Errorf("account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %v", err)
	}
	user.Password = ""
	return token, &user, nil
}
