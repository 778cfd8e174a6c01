package components

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

// Default display strings and the key field used when none is configured.
const (
	DefaultRowKeyField = "id"
	DefaultLoadingText = "Loading..."
	DefaultEmptyText   = "No data available"
)

const (
	checkboxUnchecked = "[ ]"
	checkboxChecked   = "[x]"
	checkboxPartial   = "[-]"

	sortAscIndicator  = "↑"
	sortDescIndicator = "↓"

	skeletonRowCount = 3
	skeletonFill     = "░"

	selectionColumnWidth = 3
	cellSeparator        = "  "
)

// Record is an opaque field-to-value mapping displayed as one table row.
type Record map[string]any

// Column describes a single table column. Key identifies the column and must
// be unique; Field names the record field to display and defaults to Key.
// An Accessor, when set, wins over Field. Renderer output is displayed
// verbatim; without one the raw value is stringified and nil renders empty.
type Column struct {
	Key      string
	Title    string
	Field    string
	Accessor func(Record) any
	Sortable bool
	Renderer func(value any, rec Record, row int) string
	Width    int
}

// SortOrder is the direction applied to the active sort column.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// String returns a human-readable name for the sort order.
func (o SortOrder) String() string {
	switch o {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// SortState identifies the active sort column and direction.
// Column is empty exactly when Order is SortNone.
type SortState struct {
	Column string
	Order  SortOrder
}

// CheckState is the derived tri-state of the header checkbox. It is computed
// from selection and data counts only and never gates click handling.
type CheckState int

const (
	CheckNone CheckState = iota
	CheckPartial
	CheckAll
)

// TableConfig carries the construction parameters for a Table.
type TableConfig struct {
	Columns     []Column
	Selectable  bool
	RowKeyField string
	RowKey      func(Record) any
	LoadingText string
	EmptyText   string
	OnSelect    func([]Record)
	OnRowClick  func(Record, int)
	Collator    *collate.Collator
}

// Table renders records as a sortable, optionally selectable tabular view.
//
// The table owns its sort state; selection is host-owned: every checkbox
// interaction emits a complete new selection through OnSelect and the host is
// expected to feed the result back via SetSelected. The table never mutates
// the data or selection slices it is given.
type Table struct {
	BaseComponent

	columns     []Column
	data        []Record
	selected    []Record
	sortState   SortState
	loading     bool
	loadingText string
	emptyText   string
	selectable  bool
	rowKeyField string
	rowKeyFn    func(Record) any
	onSelect    func([]Record)
	onRowClick  func(Record, int)
	collator    *collate.Collator

	focused   bool
	cursor    int
	headerCol int

	viewRows  []Record
	viewDirty bool
}

// NewTable creates a table from the given configuration. Duplicate column
// keys are rejected with a ValidationError.
func NewTable(cfg TableConfig) (Table, error) {
	t := Table{
		BaseComponent: NewBaseComponent(),
		selectable:    cfg.Selectable,
		rowKeyField:   cfg.RowKeyField,
		rowKeyFn:      cfg.RowKey,
		loadingText:   cfg.LoadingText,
		emptyText:     cfg.EmptyText,
		onSelect:      cfg.OnSelect,
		onRowClick:    cfg.OnRowClick,
		collator:      cfg.Collator,
		headerCol:     -1,
		viewDirty:     true,
	}

	if t.rowKeyField == "" {
		t.rowKeyField = DefaultRowKeyField
	}
	if t.loadingText == "" {
		t.loadingText = DefaultLoadingText
	}
	if t.emptyText == "" {
		t.emptyText = DefaultEmptyText
	}
	if t.collator == nil {
		t.collator = collate.New(language.Und)
	}

	if err := t.setColumns(cfg.Columns); err != nil {
		return Table{}, err
	}

	return t, nil
}

// SetColumns replaces the column definitions. On duplicate keys the previous
// columns stay in place and a ValidationError is returned.
func (t *Table) SetColumns(cols []Column) error {
	return t.setColumns(cols)
}

func (t *Table) setColumns(cols []Column) error {
	prepared := make([]Column, len(cols))
	copy(prepared, cols)

	seen := make(map[string]int, len(prepared))
	for i := range prepared {
		if prepared[i].Field == "" {
			prepared[i].Field = prepared[i].Key
		}
		if first, dup := seen[prepared[i].Key]; dup {
			return tavlaerrors.NewValidationError(
				fmt.Sprintf("columns[%d].key", i),
				fmt.Sprintf("duplicate column key %q (first used by column %d)", prepared[i].Key, first),
				nil,
			)
		}
		seen[prepared[i].Key] = i
	}

	t.columns = prepared
	t.viewDirty = true
	t.resetHeaderCursor()
	return nil
}

// SetRows replaces the displayed data with a copy of rows; the caller's
// slice is never mutated or reordered. Sort state persists across data
// changes. Colliding derived row keys are reported as a ValidationError but
// the rows are accepted regardless, so the display keeps working.
func (t *Table) SetRows(rows []Record) error {
	data := make([]Record, len(rows))
	copy(data, rows)
	t.data = data
	t.viewDirty = true
	t.clampCursor()

	return t.checkRowKeys()
}

// SetSelected replaces the selection snapshot used for display. Hosts call
// this with each sequence emitted through OnSelect.
func (t *Table) SetSelected(selected []Record) {
	snapshot := make([]Record, len(selected))
	copy(snapshot, selected)
	t.selected = snapshot
}

// SetLoading toggles the skeleton body state.
func (t *Table) SetLoading(loading bool) {
	t.loading = loading
}

// SetLoadingText replaces the caption shown while loading.
func (t *Table) SetLoadingText(text string) {
	t.loadingText = text
}

// SetEmptyText replaces the text shown when no rows are present.
func (t *Table) SetEmptyText(text string) {
	t.emptyText = text
}

// Focus enables key handling.
func (t *Table) Focus() {
	t.focused = true
}

// Blur disables key handling.
func (t *Table) Blur() {
	t.focused = false
}

// Focused reports whether the table receives key events.
func (t *Table) Focused() bool {
	return t.focused
}

// Loading reports whether the skeleton body state is active.
func (t *Table) Loading() bool {
	return t.loading
}

// SortState returns the active sort column and direction.
func (t *Table) SortState() SortState {
	return t.sortState
}

// Cursor returns the index of the row the cursor is on.
func (t *Table) Cursor() int {
	return t.cursor
}

// FocusedColumn returns the key of the column the header cursor is on, or
// an empty string when no column is sortable.
func (t *Table) FocusedColumn() string {
	if t.headerCol < 0 || t.headerCol >= len(t.columns) {
		return ""
	}
	return t.columns[t.headerCol].Key
}

// Rows returns a copy of the processed (sorted) rows as displayed.
func (t *Table) Rows() []Record {
	view := t.rows()
	out := make([]Record, len(view))
	copy(out, view)
	return out
}

// HeaderCheckState derives the tri-state header checkbox value from counts.
func (t *Table) HeaderCheckState() CheckState {
	if len(t.data) == 0 || len(t.selected) == 0 {
		return CheckNone
	}
	if len(t.selected) == len(t.data) {
		return CheckAll
	}
	return CheckPartial
}

// ToggleSort advances the sort cycle for the named column: inactive columns
// become active ascending; the active column cycles ascending, descending,
// then none. Switching columns resets to ascending with no carry-over.
// Unknown or non-sortable keys are ignored.
func (t *Table) ToggleSort(key string) {
	col, ok := t.columnByKey(key)
	if !ok || !col.Sortable {
		return
	}

	switch {
	case t.sortState.Column != key:
		t.sortState = SortState{Column: key, Order: SortAscending}
	case t.sortState.Order == SortAscending:
		t.sortState = SortState{Column: key, Order: SortDescending}
	default:
		t.sortState = SortState{}
	}

	t.viewDirty = true
}

// ToggleRow flips the checkbox of displayed row i. Checking emits the
// previous selection with the record appended; unchecking emits the previous
// selection minus every entry whose derived key matches the row's key. The
// table itself never changes its selection snapshot; the host round-trips
// the emitted sequence through SetSelected.
func (t *Table) ToggleRow(i int) {
	if !t.selectable || t.loading {
		return
	}
	view := t.rows()
	if i < 0 || i >= len(view) {
		return
	}

	rec := view[i]
	key := t.deriveKey(rec, i)

	if t.isKeySelected(key) {
		next := make([]Record, 0, len(t.selected))
		for j, item := range t.selected {
			if t.deriveKey(item, j) != key {
				next = append(next, item)
			}
		}
		t.emitSelect(next)
		return
	}

	next := make([]Record, 0, len(t.selected)+1)
	next = append(next, t.selected...)
	next = append(next, rec)
	t.emitSelect(next)
}

// ToggleAll flips the header checkbox: with every row selected it emits an
// empty selection, otherwise it emits a snapshot of the full data sequence
// in original input order, never the sorted order.
func (t *Table) ToggleAll() {
	if !t.selectable {
		return
	}

	if len(t.data) > 0 && len(t.selected) == len(t.data) {
		t.emitSelect([]Record{})
		return
	}

	next := make([]Record, len(t.data))
	copy(next, t.data)
	t.emitSelect(next)
}

// ClickRow emits OnRowClick for displayed row i, independent of selection.
func (t *Table) ClickRow(i int) {
	if t.loading || t.onRowClick == nil {
		return
	}
	view := t.rows()
	if i < 0 || i >= len(view) {
		return
	}
	t.onRowClick(view[i], i)
}

// Update handles key events while the table is focused: up/down and j/k move
// the row cursor, left/right and h/l move the header cursor across sortable
// columns, s toggles sort on the focused column, space toggles the cursor
// row's checkbox (and only that; it never doubles as a row click), enter
// clicks the cursor row, and a toggles the header checkbox.
func (t Table) Update(msg tea.Msg) (Table, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return t, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		t.moveCursor(-1)
	case "down", "j":
		t.moveCursor(1)
	case "left", "h":
		t.moveHeaderCursor(-1)
	case "right", "l":
		t.moveHeaderCursor(1)
	case "s":
		t.ToggleSort(t.FocusedColumn())
	case " ":
		t.ToggleRow(t.cursor)
	case "enter":
		t.ClickRow(t.cursor)
	case "a":
		t.ToggleAll()
	}

	return t, nil
}

// View renders the table with the default theme.
func (t *Table) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table with the provided theme context. The
// body is one of three mutually exclusive states, re-derived every render:
// skeleton rows while loading, the empty text when no rows remain, or one
// line per processed record.
func (t *Table) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme.Normalize()
	view := t.rows()
	widths := t.columnWidths(view)

	lines := make([]string, 0, len(view)+3)
	lines = append(lines, t.renderHeader(theme, widths))

	switch {
	case t.loading:
		for i := 0; i < skeletonRowCount; i++ {
			lines = append(lines, t.renderSkeletonRow(theme, widths))
		}
	case len(view) == 0:
		lines = append(lines, t.renderEmptyRow(theme, widths))
	default:
		for i, rec := range view {
			lines = append(lines, t.renderRow(theme, widths, rec, i))
		}
	}

	if t.loading && t.loadingText != "" {
		lines = append(lines, theme.Table.Caption.Render(t.loadingText))
	}

	return t.ComputeStyle(theme).Render(strings.Join(lines, "\n"))
}

func (t *Table) renderHeader(theme Theme, widths []int) string {
	cells := make([]string, 0, len(t.columns)+1)

	if t.selectable {
		glyph := checkboxUnchecked
		switch t.HeaderCheckState() {
		case CheckAll:
			glyph = checkboxChecked
		case CheckPartial:
			glyph = checkboxPartial
		}
		cells = append(cells, renderCell(theme.Table.Header, glyph, selectionColumnWidth))
	}

	for i, col := range t.columns {
		style := theme.Table.Header
		if t.focused && i == t.headerCol {
			style = theme.Table.HeaderActive
		}
		cells = append(cells, renderCell(style, t.headerTitle(col), widths[i]))
	}

	return strings.Join(cells, cellSeparator)
}

func (t *Table) headerTitle(col Column) string {
	if t.sortState.Column != col.Key || t.sortState.Order == SortNone {
		return col.Title
	}
	indicator := sortAscIndicator
	if t.sortState.Order == SortDescending {
		indicator = sortDescIndicator
	}
	return col.Title + " " + indicator
}

func (t *Table) renderRow(theme Theme, widths []int, rec Record, row int) string {
	selected := t.selectable && t.isKeySelected(t.deriveKey(rec, row))

	style := theme.Table.Cell
	if selected {
		style = theme.Table.Selected
	}
	if t.focused && row == t.cursor {
		style = theme.Table.RowCursor
	}

	cells := make([]string, 0, len(t.columns)+1)
	if t.selectable {
		glyph := checkboxUnchecked
		if selected {
			glyph = checkboxChecked
		}
		cells = append(cells, renderCell(style, glyph, selectionColumnWidth))
	}

	for i, col := range t.columns {
		cells = append(cells, renderCell(style, t.cellText(col, rec, row), widths[i]))
	}

	return strings.Join(cells, cellSeparator)
}

func (t *Table) renderSkeletonRow(theme Theme, widths []int) string {
	cells := make([]string, 0, len(t.columns)+1)
	if t.selectable {
		cells = append(cells, theme.Table.Skeleton.Render(strings.Repeat(skeletonFill, selectionColumnWidth)))
	}
	for i := range t.columns {
		width := widths[i]
		if width < 1 {
			width = 1
		}
		cells = append(cells, theme.Table.Skeleton.Render(strings.Repeat(skeletonFill, width)))
	}
	return strings.Join(cells, cellSeparator)
}

func (t *Table) renderEmptyRow(theme Theme, widths []int) string {
	total := t.totalWidth(widths)
	if min := lipgloss.Width(t.emptyText); total < min {
		total = min
	}
	return theme.Table.Empty.Width(total).Align(lipgloss.Center).Render(t.emptyText)
}

func (t *Table) totalWidth(widths []int) int {
	total := 0
	count := len(widths)
	if t.selectable {
		total += selectionColumnWidth
		count++
	}
	for _, w := range widths {
		total += w
	}
	if count > 1 {
		total += len(cellSeparator) * (count - 1)
	}
	return total
}

func (t *Table) columnWidths(view []Record) []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		w := lipgloss.Width(t.headerTitle(col))
		for row, rec := range view {
			if cw := lipgloss.Width(t.cellText(col, rec, row)); cw > w {
				w = cw
			}
		}
		widths[i] = w
	}
	return widths
}

func (t *Table) cellText(col Column, rec Record, row int) string {
	value := columnValue(col, rec)

	var text string
	switch {
	case col.Renderer != nil:
		text = col.Renderer(value, rec, row)
	case value == nil:
		text = ""
	default:
		text = fmt.Sprint(value)
	}

	// Table rows are single lines; anything past a newline cannot render.
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return text
}

func columnValue(col Column, rec Record) any {
	if col.Accessor != nil {
		return col.Accessor(rec)
	}
	return rec[col.Field]
}

func renderCell(style lipgloss.Style, text string, width int) string {
	if lipgloss.Width(text) > width {
		return style.MaxWidth(width).Render(text)
	}
	return style.Render(padRight(text, width))
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// rows returns the processed view: a copy of data with the active sort
// applied. The result is cached and recomputed only when data, columns, or
// sort state change; the input order in data is never touched.
func (t *Table) rows() []Record {
	if !t.viewDirty {
		return t.viewRows
	}

	view := make([]Record, len(t.data))
	copy(view, t.data)

	if t.sortState.Order != SortNone {
		if col, ok := t.columnByKey(t.sortState.Column); ok {
			desc := t.sortState.Order == SortDescending
			sort.SliceStable(view, func(i, j int) bool {
				cmp := t.compare(columnValue(col, view[i]), columnValue(col, view[j]))
				if desc {
					return cmp > 0
				}
				return cmp < 0
			})
		}
	}

	t.viewRows = view
	t.viewDirty = false
	return view
}

// compare orders two accessor values: nil before any non-nil value, strings
// by locale-aware collation, numerics across int/uint/float kinds, times
// chronologically, bools false before true, and anything else by its
// stringified form.
func (t *Table) compare(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return t.collator.CompareString(as, bs)
		}
	}

	if af, aok := numericValue(a); aok {
		if bf, bok := numericValue(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case !ab && bb:
				return -1
			case ab && !bb:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// deriveKey resolves the identity of rec at displayed index. The key
// function wins over the key field; a missing or nil field value falls back
// to the positional index. Membership tests always receive the entry's true
// index, so index-keyed rows behave consistently across render and
// selection paths.
func (t *Table) deriveKey(rec Record, index int) string {
	if t.rowKeyFn != nil {
		return normalizeKey(t.rowKeyFn(rec))
	}
	if v, ok := rec[t.rowKeyField]; ok && v != nil {
		return normalizeKey(v)
	}
	return strconv.Itoa(index)
}

func normalizeKey(v any) string {
	return fmt.Sprint(v)
}

func (t *Table) isKeySelected(key string) bool {
	for j, item := range t.selected {
		if t.deriveKey(item, j) == key {
			return true
		}
	}
	return false
}

func (t *Table) checkRowKeys() error {
	seen := make(map[string]int, len(t.data))
	for i, rec := range t.data {
		key := t.deriveKey(rec, i)
		if first, dup := seen[key]; dup {
			return tavlaerrors.NewValidationError(
				fmt.Sprintf("rows[%d]", i),
				fmt.Sprintf("row key %q already used by row %d", key, first),
				nil,
			)
		}
		seen[key] = i
	}
	return nil
}

func (t *Table) columnByKey(key string) (Column, bool) {
	for _, col := range t.columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column{}, false
}

func (t *Table) emitSelect(next []Record) {
	if t.onSelect != nil {
		t.onSelect(next)
	}
}

func (t *Table) moveCursor(delta int) {
	next := t.cursor + delta
	max := len(t.rows()) - 1
	if next < 0 {
		next = 0
	}
	if next > max {
		next = max
	}
	if next < 0 {
		next = 0
	}
	t.cursor = next
}

func (t *Table) moveHeaderCursor(delta int) {
	if t.headerCol < 0 {
		return
	}
	for i := t.headerCol + delta; i >= 0 && i < len(t.columns); i += delta {
		if t.columns[i].Sortable {
			t.headerCol = i
			return
		}
	}
}

func (t *Table) clampCursor() {
	max := len(t.data) - 1
	if max < 0 {
		t.cursor = 0
		return
	}
	if t.cursor > max {
		t.cursor = max
	}
}

func (t *Table) resetHeaderCursor() {
	if t.headerCol >= 0 && t.headerCol < len(t.columns) && t.columns[t.headerCol].Sortable {
		return
	}
	t.headerCol = -1
	for i, col := range t.columns {
		if col.Sortable {
			t.headerCol = i
			return
		}
	}
}
