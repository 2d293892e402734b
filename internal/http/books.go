package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpetrov/bookshelf/internal/stats"
	"github.com/mpetrov/bookshelf/internal/store"
)

// BookRequest carries the raw form values for adding or editing a book.
// Page and word counts arrive as strings; the collection validates and
// parses them.
type BookRequest struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Series    string `json:"series"`
	Pages     string `json:"pages"`
	Words     string `json:"words"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type BooksController struct {
	session *store.Session
	auditor MutationAuditor
}

func NewBooksController(session *store.Session, auditor MutationAuditor) *BooksController {
	return &BooksController{
		session: session,
		auditor: auditor,
	}
}

// GetAllBooks lists the collection, optionally sorted first via the "sort"
// query parameter (title, author, series, pages, words, enddate).
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	defer controller.session.Lock()()

	books := controller.session.Books
	switch c.Query("sort") {
	case "":
	case "title":
		books.SortByTitle()
	case "author":
		books.SortByAuthor()
	case "series":
		books.SortBySeries()
	case "pages":
		books.SortByPages()
	case "words":
		books.SortByWords()
	case "enddate":
		books.SortByEndDate()
	default:
		respondBadRequest(c, "unknown sort key")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"books": books.All(), "count": books.Size()})
}

// GetBook returns the book at a 0-based position.
func (controller *BooksController) GetBook(c *gin.Context) {
	defer controller.session.Lock()()

	idx, ok := parseIndexParam(c, "index", controller.session.Books.Size())
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, controller.session.Books.Get(idx))
}

// CreateBook validates and appends a book, then flushes the collection.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	defer controller.session.Lock()()

	book, err := controller.session.Books.AddValidated(
		req.Title, req.Author, req.Series, req.Pages, req.Words, req.StartDate, req.EndDate)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := controller.session.FlushBooks(); err != nil {
		respondInternalError(c, err, "saving books")
		return
	}

	controller.audit("book_added", book)
	respondCreated(c, book)
}

// UpdateBook replaces the book at a position with a validated copy: the
// replacement is appended first and the old record removed only once the
// new one is known good.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	defer controller.session.Lock()()

	idx, ok := parseIndexParam(c, "index", controller.session.Books.Size())
	if !ok {
		return
	}
	old := controller.session.Books.Get(idx)

	book, err := controller.session.Books.AddValidated(
		req.Title, req.Author, req.Series, req.Pages, req.Words, req.StartDate, req.EndDate)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	controller.session.Books.Remove(old)

	if err := controller.session.FlushBooks(); err != nil {
		respondInternalError(c, err, "saving books")
		return
	}

	controller.audit("book_edited", gin.H{"old": old, "new": book})
	c.IndentedJSON(http.StatusOK, book)
}

// DeleteBook removes the book at a position and flushes the collection.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	defer controller.session.Lock()()

	idx, ok := parseIndexParam(c, "index", controller.session.Books.Size())
	if !ok {
		return
	}
	book := controller.session.Books.Get(idx)
	controller.session.Books.Remove(book)

	if err := controller.session.FlushBooks(); err != nil {
		respondInternalError(c, err, "saving books")
		return
	}

	controller.audit("book_deleted", book)
	respondSuccess(c, "book deleted")
}

// SearchBooks filters the collection by exactly one of title, author or
// series. A title search returns a single book or 404; author and series
// searches return a (possibly empty) list.
func (controller *BooksController) SearchBooks(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")
	series := c.Query("series")

	defer controller.session.Lock()()
	books := controller.session.Books

	switch {
	case title != "":
		book := books.SearchTitle(title)
		if book.IsEmpty() {
			respondNotFound(c, "book")
			return
		}
		c.IndentedJSON(http.StatusOK, book)
	case author != "":
		matches := books.SearchAuthor(author)
		c.IndentedJSON(http.StatusOK, gin.H{"books": matches, "count": len(matches)})
	case series != "":
		matches := books.SearchSeries(series)
		c.IndentedJSON(http.StatusOK, gin.H{"books": matches, "count": len(matches)})
	default:
		respondBadRequest(c, "one of title, author or series query parameters is required")
	}
}

// GetRankings positions the book at a 0-based index against the rest of the
// collection.
func (controller *BooksController) GetRankings(c *gin.Context) {
	defer controller.session.Lock()()

	idx, ok := parseIndexParam(c, "index", controller.session.Books.Size())
	if !ok {
		return
	}
	book := controller.session.Books.Get(idx)
	c.IndentedJSON(http.StatusOK, stats.BookRankings(controller.session.Books, book))
}

func (controller *BooksController) audit(action string, payload any) {
	if controller.auditor == nil {
		return
	}
	if _, err := controller.auditor.SaveMutation(action, payload); err != nil {
		// Audit receipts are best effort; the mutation itself already
		// succeeded.
		logAuditError(action, err)
	}
}
