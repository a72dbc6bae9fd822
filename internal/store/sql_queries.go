package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, username, email, created_at, updated_at
    FROM users
    ORDER BY created_at DESC;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1, updated_at = NOW()
    WHERE user_id = $2;`

	countUserContent = `SELECT
    (SELECT COUNT(*) FROM books   WHERE owner_user_id  = $1) AS book_count,
    (SELECT COUNT(*) FROM reviews WHERE author_user_id = $1) AS review_count;`

	createBook = `INSERT INTO books (title, author, description, owner_user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING book_id, title, author, description, owner_user_id, created_at, updated_at;`

	getBookByID = `SELECT b.book_id, b.title, b.author, b.description, b.owner_user_id,
       b.created_at, b.updated_at, COUNT(r.review_id) AS review_count
    FROM books b
    LEFT JOIN reviews r ON r.book_id = b.book_id
    WHERE b.book_id = $1
    GROUP BY b.book_id;`

	updateBook = `UPDATE books
    SET title = $1, author = $2, description = $3, updated_at = NOW()
    WHERE book_id = $4
    RETURNING book_id, title, author, description, owner_user_id, created_at, updated_at;`

	deleteBook = `DELETE FROM books WHERE book_id = $1;`

	createReview = `INSERT INTO reviews (body, book_id, author_user_id)
    VALUES ($1, $2, $3)
    RETURNING review_id, body, book_id, author_user_id, created_at, updated_at;`

	getReviewByID = `SELECT review_id, body, book_id, author_user_id, created_at, updated_at
    FROM reviews
    WHERE review_id = $1;`

	listReviewsByBook = `SELECT review_id, body, book_id, author_user_id, created_at, updated_at
    FROM reviews
    WHERE book_id = $1
    ORDER BY created_at DESC;`

	updateReview = `UPDATE reviews
    SET body = $1, updated_at = NOW()
    WHERE review_id = $2
    RETURNING review_id, body, book_id, author_user_id, created_at, updated_at;`

	deleteReview = `DELETE FROM reviews WHERE review_id = $1;`
)

// buildListBooksQuery builds the book listing query. When search is
// non-empty the result is narrowed to books whose title or author matches
// it case-insensitively. Ordering is always newest-first; the review count
// is aggregated in the same statement.
func buildListBooksQuery(search string) (string, []any, error) {
	builder := sq.
		Select(
			"b.book_id", "b.title", "b.author", "b.description",
			"b.owner_user_id", "b.created_at", "b.updated_at",
			"COUNT(r.review_id) AS review_count",
		).
		From("books b").
		LeftJoin("reviews r ON r.book_id = b.book_id").
		GroupBy("b.book_id").
		OrderBy("b.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.author": pattern},
		})
	}

	return builder.ToSql()
}
