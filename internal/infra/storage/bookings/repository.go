package bookings

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/pkg/types"
)

// Tx предоставляет операции над хранилищем внутри Transact
type Tx interface {
	Query(filter domain.BookingsFilter) []domain.Booking
	Insert(booking domain.Booking)
	Delete(filter domain.BookingsFilter) int
}

// Repository файловое хранилище бронирований.
//
// Вся таблица держится в памяти и целиком переписывается на диск после
// каждой мутации (load-mutate-atomic-replace). Мьютекс защищает только
// память этого процесса: при двух конкурентных процессах настоящий
// эксклюзивный лок файла не берется, узкое окно гонки между сессиями
// принято как известное ограничение.
type Repository struct {
	path string

	mu       sync.Mutex
	loaded   bool
	readOnly bool
	rows     []domain.Booking

	// Исходное содержимое файла при нераспознанной схеме:
	// данные не теряются и отдаются на чтение как есть
	rawHeader []string
	rawRows   [][]string
}

// NewRepository создает хранилище поверх указанного CSV файла
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает файл хранилища в память, мигрируя устаревшие раскладки
// через Normalize. Отсутствующий файл означает пустую таблицу, не ошибку.
// При нераспознанной схеме хранилище деградирует до режима "только чтение":
// выборки работают по сырым строкам, мутации падают с ErrSchemaMismatch.
func (r *Repository) Load(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaded = true
	r.readOnly = false
	r.rows = nil
	r.rawHeader = nil
	r.rawRows = nil

	file, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: Load - open %s: %v", ErrIO, r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: Load - parse %s: %v", ErrIO, r.path, err)
	}
	if len(records) == 0 {
		// Пустой файл эквивалентен отсутствующему
		return nil
	}

	raw := RecordSet{Header: records[0], Rows: records[1:]}
	normalized, err := Normalize(raw)
	if err != nil {
		// Деградация до режима "только чтение", исходные строки сохраняем
		r.readOnly = true
		r.rawHeader = raw.Header
		r.rawRows = raw.Rows
		return err
	}

	rows := make([]domain.Booking, 0, len(normalized.Rows))
	for i, record := range normalized.Rows {
		date, err := types.NewDayMonthFromString(record[0])
		if err != nil {
			return fmt.Errorf("%w: Load - row %d: %v", ErrIO, i+1, err)
		}
		rows = append(rows, domain.Booking{
			Date: date,
			Room: record[1],
			Desk: record[2],
			User: record[3],
		})
	}

	r.rows = rows
	return nil
}

// Save атомарно переписывает файл хранилища из таблицы в памяти:
// содержимое сначала пишется во временный файл, затем подменяет целевой
// через rename, поэтому читатели не видят частично записанный файл.
func (r *Repository) Save(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(ctx)
}

// Query возвращает все записи, подходящие под фильтр, без побочных эффектов
func (r *Repository) Query(filter domain.BookingsFilter) []domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queryLocked(filter)
}

// All возвращает копию всех записей хранилища
func (r *Repository) All() []domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Booking(nil), r.rows...)
}

// Count возвращает количество записей, находящихся в памяти
func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readOnly {
		return len(r.rawRows)
	}
	return len(r.rows)
}

// Insert добавляет одну запись в таблицу в памяти. Проверка инвариантов
// лежит на вызывающем; запись не попадает на диск до Save.
func (r *Repository) Insert(booking domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.mutableLocked(); err != nil {
		return err
	}
	r.rows = append(r.rows, booking)
	return nil
}

// Delete удаляет все записи, подходящие под фильтр, и возвращает их
// количество. Изменение не попадает на диск до Save.
func (r *Repository) Delete(filter domain.BookingsFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.mutableLocked(); err != nil {
		return 0, err
	}
	return r.deleteLocked(filter), nil
}

// Transact выполняет fn над хранилищем и атомарно сохраняет результат.
// При любой ошибке (включая ошибку записи файла) таблица в памяти
// откатывается к снимку до вызова: несохраненная мутация не считается
// зафиксированной.
func (r *Repository) Transact(ctx context.Context, fn func(tx Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.mutableLocked(); err != nil {
		return err
	}

	snapshot := append([]domain.Booking(nil), r.rows...)
	if err := fn(&storeTx{repo: r}); err != nil {
		r.rows = snapshot
		return err
	}
	if err := r.saveLocked(ctx); err != nil {
		r.rows = snapshot
		return err
	}
	return nil
}

// Degraded сообщает, перешло ли хранилище в режим "только чтение"
// после нераспознанной схемы
func (r *Repository) Degraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readOnly
}

// Raw возвращает нетронутые заголовок и строки, сохраненные после
// нераспознанной схемы. Пусто, если файл загрузился штатно.
func (r *Repository) Raw() ([]string, [][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rawHeader, r.rawRows
}

// storeTx операции Transact поверх уже взятого мьютекса
type storeTx struct {
	repo *Repository
}

func (t *storeTx) Query(filter domain.BookingsFilter) []domain.Booking {
	return t.repo.queryLocked(filter)
}

func (t *storeTx) Insert(booking domain.Booking) {
	t.repo.rows = append(t.repo.rows, booking)
}

func (t *storeTx) Delete(filter domain.BookingsFilter) int {
	return t.repo.deleteLocked(filter)
}

func (r *Repository) mutableLocked() error {
	if !r.loaded {
		return ErrNotLoaded
	}
	if r.readOnly {
		return fmt.Errorf("%w: store is read-only, mutations are refused", ErrSchemaMismatch)
	}
	return nil
}

func (r *Repository) queryLocked(filter domain.BookingsFilter) []domain.Booking {
	var matched []domain.Booking
	for _, row := range r.rows {
		if filter.Matches(row) {
			matched = append(matched, row)
		}
	}
	return matched
}

func (r *Repository) deleteLocked(filter domain.BookingsFilter) int {
	kept := r.rows[:0]
	removed := 0
	for _, row := range r.rows {
		if filter.Matches(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return removed
}

func (r *Repository) saveLocked(_ context.Context) error {
	if err := r.mutableLocked(); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".bookings-*.csv")
	if err != nil {
		return fmt.Errorf("%w: Save - create temp file: %v", ErrIO, err)
	}
	tmpName := tmp.Name()

	if err := writeRecords(tmp, r.rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - write temp file: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - close temp file: %v", ErrIO, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - replace %s: %v", ErrIO, r.path, err)
	}
	return nil
}

// writeRecords сериализует таблицу, всегда заключая поля в кавычки,
// чтобы содержимое файла было стабильным между перезаписями
func writeRecords(w io.Writer, rows []domain.Booking) error {
	if err := writeQuotedRow(w, currentHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Date.String(), row.Room, row.Desk, row.User}
		if err := writeQuotedRow(w, record); err != nil {
			return err
		}
	}
	return nil
}

func writeQuotedRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
