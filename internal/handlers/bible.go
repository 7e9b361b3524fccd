package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/verbum-domini-api/internal/services"
)

// BibleHandler serves books, translations and verse text
type BibleHandler struct {
	bible *services.BibleService
}

// NewBibleHandler creates a new bible handler
func NewBibleHandler(bible *services.BibleService) *BibleHandler {
	return &BibleHandler{bible: bible}
}

// ListBooks handles GET /books
func (h *BibleHandler) ListBooks(c echo.Context) error {
	books, err := h.bible.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook handles GET /books/:abbr
func (h *BibleHandler) GetBook(c echo.Context) error {
	book, err := h.bible.GetBook(c.Request().Context(), c.Param("abbr"))
	if err != nil {
		return httpError(err, "Book not found")
	}
	return c.JSON(http.StatusOK, book)
}

// ListChapters handles GET /books/:abbr/chapters
func (h *BibleHandler) ListChapters(c echo.Context) error {
	chapters, err := h.bible.ListChapters(c.Request().Context(), c.Param("abbr"))
	if err != nil {
		return httpError(err, "Book not found")
	}
	return c.JSON(http.StatusOK, chapters)
}

// ListTranslations handles GET /translations
func (h *BibleHandler) ListTranslations(c echo.Context) error {
	translations, err := h.bible.ListTranslations(c.Request().Context())
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusOK, translations)
}

// GetChapter handles GET /bible/:translation/:book/:chapter
func (h *BibleHandler) GetChapter(c echo.Context) error {
	chapter, err := positiveParam(c, "chapter")
	if err != nil {
		return err
	}

	verses, err := h.bible.GetChapterVerses(c.Request().Context(), c.Param("translation"), c.Param("book"), chapter)
	if err != nil {
		return httpError(err, "")
	}
	return c.JSON(http.StatusOK, verses)
}

// GetVerse handles GET /bible/:translation/:book/:chapter/:verse
func (h *BibleHandler) GetVerse(c echo.Context) error {
	chapter, err := positiveParam(c, "chapter")
	if err != nil {
		return err
	}
	number, err := positiveParam(c, "verse")
	if err != nil {
		return err
	}

	verse, err := h.bible.GetVerse(c.Request().Context(), c.Param("translation"), c.Param("book"), chapter, number)
	if err != nil {
		return httpError(err, "Verse not found")
	}
	return c.JSON(http.StatusOK, verse)
}

func positiveParam(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" number")
	}
	return n, nil
}

// RegisterRoutes registers bible routes
func (h *BibleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/books", h.ListBooks)
	g.GET("/books/:abbr", h.GetBook)
	g.GET("/books/:abbr/chapters", h.ListChapters)
	g.GET("/translations", h.ListTranslations)
	g.GET("/bible/:translation/:book/:chapter", h.GetChapter)
	g.GET("/bible/:translation/:book/:chapter/:verse", h.GetVerse)
}
