package handlers

import (
	"errors"
	"strings"

	"github.com/shivangi1713/The-Intelligent-Content-API/database"
	"github.com/shivangi1713/The-Intelligent-Content-API/models"
	"github.com/shivangi1713/The-Intelligent-Content-API/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup registers a new user with an email and password
func Signup(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid input"})
	}

	if input.Email == "" || input.Password == "" {
		return c.Status(400).JSON(fiber.Map{"detail": "Email and password are required."})
	}

	// Check for an existing account first for the friendly error; the
	// unique index on email is the real guarantee.
	var existing models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Email already registered."})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Failed to hash password"})
	}

	user := models.User{
		Email:          input.Email,
		HashedPassword: string(hashedPassword),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		// Lost a race against a concurrent signup for the same email
		return c.Status(400).JSON(fiber.Map{"detail": "Email already registered."})
	}

	models.LogEvent(database.DB, user.ID, "signup", user.Email)

	return c.Status(201).JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Login verifies credentials from an OAuth2-style form and issues a bearer
// token
func Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"detail": "Invalid input"})
	}

	// The "username" form field carries the email
	var user models.User
	if err := database.DB.Where("email = ?", input.Username).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"detail": "Incorrect email or password."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"detail": "Incorrect email or password."})
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"detail": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// RequireAuth guards content endpoints. It validates the bearer token and
// stores the authenticated user's ID in c.Locals("userID").
func RequireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return unauthorized(c)
	}

	userID, err := utils.ValidateToken(tokenString)
	if err != nil {
		return unauthorized(c)
	}

	// The subject must still exist
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(500).JSON(fiber.Map{"detail": "Database error"})
		}
		return unauthorized(c)
	}

	c.Locals("userID", user.ID)
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	c.Set("WWW-Authenticate", "Bearer")
	return c.Status(401).JSON(fiber.Map{"detail": "Could not validate credentials."})
}
