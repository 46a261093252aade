package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotelBooker/internal/config"
	"hotelBooker/internal/lib/pricing"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

const bookingColumns = `booking_id, hotel_id, room_id, user_id, check_in_date, check_out_date, total_price, booking_status, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.HotelID,
		&b.RoomID,
		&b.UserID,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.TotalPrice,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Storage) queryBookings(query string, args ...any) ([]models.Booking, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC`

	return s.queryBookings(query)
}

func (s *Storage) GetBooking(id int) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_id = $1`

	b, err := scanBooking(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

func (s *Storage) GetBookingsByHotel(hotelID int) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE hotel_id = $1
		ORDER BY check_in_date ASC`

	return s.queryBookings(query, hotelID)
}

func (s *Storage) GetBookingsByRoom(hotelID, roomID int) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE hotel_id = $1 AND room_id = $2
		ORDER BY check_in_date ASC`

	return s.queryBookings(query, hotelID, roomID)
}

func (s *Storage) GetBookingsByUser(userID string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY check_in_date DESC`

	return s.queryBookings(query, userID)
}

// CreateBooking inserts a booking and decrements the room's availability in
// one transaction. The room row is locked first so concurrent requests for
// the same room serialize on the availability and overlap checks.
func (s *Storage) CreateBooking(b models.Booking) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var availability int
	var pricePerNight float64
	lockQuery := `
		SELECT availability_status, price
		FROM rooms
		WHERE id_room = $1
		FOR UPDATE`

	err = tx.QueryRow(lockQuery, b.RoomID).Scan(&availability, &pricePerNight)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrRoomNotFound
		}
		return 0, fmt.Errorf("failed to lock room: %w", err)
	}

	if availability <= 0 {
		return 0, storage.ErrRoomUnavailable
	}

	// A same-day stay occupies one night, so widen the requested range
	// before the overlap check; existing same-day rows are widened in SQL.
	checkOut := b.CheckOutDate
	if !checkOut.After(b.CheckInDate) {
		checkOut = b.CheckInDate.AddDate(0, 0, 1)
	}

	var conflict bool
	conflictQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE hotel_id = $1 AND room_id = $2
			AND booking_status <> 'Cancelled'
			AND check_in_date < $4
			AND GREATEST(check_out_date, check_in_date + INTERVAL '1 day') > $3
		)`

	err = tx.QueryRow(conflictQuery, b.HotelID, b.RoomID, b.CheckInDate, checkOut).Scan(&conflict)
	if err != nil {
		return 0, fmt.Errorf("failed to check date conflicts: %w", err)
	}

	if conflict {
		return 0, storage.ErrDateConflict
	}

	// The room's price is authoritative; the client-sent total is ignored.
	b.TotalPrice = pricing.Total(pricePerNight, b.CheckInDate, b.CheckOutDate)

	insertQuery := `
		INSERT INTO bookings (hotel_id, room_id, user_id, check_in_date, check_out_date, total_price, booking_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING booking_id`

	var id int
	err = tx.QueryRow(insertQuery,
		b.HotelID,
		b.RoomID,
		b.UserID,
		b.CheckInDate,
		b.CheckOutDate,
		b.TotalPrice,
		b.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	decrementQuery := `
		UPDATE rooms
		SET availability_status = availability_status - 1
		WHERE id_room = $1`

	_, err = tx.Exec(decrementQuery, b.RoomID)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement room availability: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit booking: %w", err)
	}

	return id, nil
}

func (s *Storage) UpdateBooking(id int, b models.Booking) error {
	query := `
		UPDATE bookings
		SET hotel_id = $1, room_id = $2, user_id = $3, check_in_date = $4,
		    check_out_date = $5, total_price = $6, booking_status = $7
		WHERE booking_id = $8`

	result, err := s.DB.Exec(query,
		b.HotelID,
		b.RoomID,
		b.UserID,
		b.CheckInDate,
		b.CheckOutDate,
		b.TotalPrice,
		b.Status,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

// DeleteBooking removes a booking and restores the room's availability
// unless the booking was already cancelled (its unit was restored then).
func (s *Storage) DeleteBooking(id int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var roomID int
	var status models.BookingStatus
	selectQuery := `
		SELECT room_id, booking_status
		FROM bookings
		WHERE booking_id = $1
		FOR UPDATE`

	err = tx.QueryRow(selectQuery, id).Scan(&roomID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	_, err = tx.Exec(`DELETE FROM bookings WHERE booking_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if status != models.StatusCancelled {
		if err = incrementAvailability(tx, roomID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateBookingStatus transitions a booking's status. Only Pending bookings
// may transition; cancelling one restores the room's availability.
func (s *Storage) UpdateBookingStatus(id int, newStatus models.BookingStatus) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var roomID int
	var current models.BookingStatus
	selectQuery := `
		SELECT room_id, booking_status
		FROM bookings
		WHERE booking_id = $1
		FOR UPDATE`

	err = tx.QueryRow(selectQuery, id).Scan(&roomID, &current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.Final() {
		return storage.ErrStatusFinal
	}

	_, err = tx.Exec(`UPDATE bookings SET booking_status = $1 WHERE booking_id = $2`, newStatus, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if newStatus == models.StatusCancelled {
		if err = incrementAvailability(tx, roomID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func incrementAvailability(tx *sql.Tx, roomID int) error {
	_, err := tx.Exec(`
		UPDATE rooms
		SET availability_status = availability_status + 1
		WHERE id_room = $1`, roomID)
	if err != nil {
		return fmt.Errorf("failed to restore room availability: %w", err)
	}

	return nil
}

// CancelExpiredBookings cancels Pending bookings older than ttl and restores
// their rooms' availability. It returns the number of bookings cancelled.
func (s *Storage) CancelExpiredBookings(ttl time.Duration) (int64, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	expireQuery := `
		UPDATE bookings
		SET booking_status = 'Cancelled'
		WHERE booking_status = 'Pending'
		AND created_at < NOW() - $1 * INTERVAL '1 second'
		RETURNING room_id`

	rows, err := tx.Query(expireQuery, int64(ttl.Seconds()))
	if err != nil {
		return 0, fmt.Errorf("failed to cancel expired bookings: %w", err)
	}

	var roomIDs []int
	for rows.Next() {
		var roomID int
		if err = rows.Scan(&roomID); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan room id: %w", err)
		}
		roomIDs = append(roomIDs, roomID)
	}
	rows.Close()

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating expired bookings: %w", err)
	}

	for _, roomID := range roomIDs {
		if err = incrementAvailability(tx, roomID); err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit expiry sweep: %w", err)
	}

	return int64(len(roomIDs)), nil
}

// SaveSearchCriteria stores search criteria under c.Key, generating a key
// when none is supplied. Saving to an existing key overwrites it.
func (s *Storage) SaveSearchCriteria(c models.SearchCriteria) (string, error) {
	if c.Key == "" {
		c.Key = uuid.NewString()
	}

	query := `
		INSERT INTO search_criteria (key, destination, check_in, check_out, adult_count, child_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (key) DO UPDATE
		SET destination = EXCLUDED.destination,
		    check_in = EXCLUDED.check_in,
		    check_out = EXCLUDED.check_out,
		    adult_count = EXCLUDED.adult_count,
		    child_count = EXCLUDED.child_count`

	_, err := s.DB.Exec(query,
		c.Key,
		c.Destination,
		c.CheckIn,
		c.CheckOut,
		c.AdultCount,
		c.ChildCount,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save search criteria: %w", err)
	}

	return c.Key, nil
}

func (s *Storage) GetSearchCriteria(key string) (*models.SearchCriteria, error) {
	query := `
		SELECT key, destination, check_in, check_out, adult_count, child_count
		FROM search_criteria
		WHERE key = $1`

	var c models.SearchCriteria
	err := s.DB.QueryRow(query, key).Scan(
		&c.Key,
		&c.Destination,
		&c.CheckIn,
		&c.CheckOut,
		&c.AdultCount,
		&c.ChildCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSearchNotFound
		}
		return nil, fmt.Errorf("failed to get search criteria: %w", err)
	}

	return &c, nil
}
