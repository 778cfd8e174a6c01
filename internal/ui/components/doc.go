// Package components provides a declarative, theme-aware UI component library for terminal applications.
//
// # Overview
//
// This package offers a composable widget model built on top of lipgloss for terminal UI
// rendering, with bubbletea integration for the interactive widgets. All components are
// themeable, composable, and type-safe.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - Immutable theme definitions (colors, spacing, typography)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Composable UI elements that render to strings
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext, eliminating global state:
//
//	theme := components.DefaultTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := component.ViewWithContext(ctx)
//
// For simple cases, View() uses the default theme automatically:
//
//	output := component.View()
//
// # Core Components
//
// Interactive widgets:
//   - Table: Sortable, selectable data rows with loading and empty states
//   - Input: Single-line text field with label and error caption
//   - ThemeToggle: Light/dark/auto mode switch
//
// Primitive components:
//   - Text: Styled text content
//   - Divider: Visual separators
//
// Layout components:
//   - Stack: Vertical/horizontal arrangement with gaps and alignment
//   - Container: Generic box with borders and padding
//
// Semantic components:
//   - Card: Styled container for grouped content
//   - Badge: Status indicators
//   - Alert: Notification messages
//   - Header: Titles and headings
//
// # Interactive Widgets
//
// Table, Input, and ThemeToggle follow the bubbletea update loop: a value-receiver
// Update consumes key messages and returns the next widget state. Table and
// ThemeToggle are controlled components. They never change the host-owned pieces
// of their state themselves; every interaction emits a complete new value through
// a callback, and the host feeds the accepted value back:
//
//	tbl, _ := components.NewTable(components.TableConfig{
//		Columns:    cols,
//		Selectable: true,
//		OnSelect:   func(rows []components.Record) { app.selection = rows },
//	})
//	tbl.SetRows(rows)
//	tbl.SetSelected(app.selection)
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	card := NewCard().WithAppliers(
//		Background(PalettePrimary),
//		Padding(SpacingSizeLarge),
//		Border(BorderVariantRounded),
//	)
//
// Available modifiers:
//   - Background(slot): Semantic background color with matching foreground
//   - Foreground(slot): Semantic text color
//   - Border(variant): Border style from theme
//   - Padding/PaddingX/PaddingY(size): Spacing from theme scale
//   - Margin/MarginX/MarginY(size): Margin from theme scale
//   - Typography(variant): Typography preset from theme
//
// # Composition
//
// Components compose naturally through the Renderable interface:
//
//	content := VStack(
//		NewHeader("Crew"),
//		NewDivider(),
//		NewCard(
//			NewText("Status: Active"),
//			SuccessBadge("Synced"),
//		).WithTitle("Roster"),
//	).WithGap(1)
//
// # Context-Based Rendering
//
// All components implement both View() and ViewWithContext() methods:
//
//	// Simple rendering with default theme
//	output := component.View()
//
//	// Explicit theme and layout hints
//	ctx := RenderContext{
//		Theme:       customTheme,
//		MaxWidth:    80,
//		ParentWidth: 100,
//	}
//	output := component.ViewWithContext(ctx)
//
// # Type Safety
//
// The package uses typed enums instead of magic strings:
//
//	SpacingSize:       SpacingSizeSmall, SpacingSizeMedium, etc.
//	PaletteSlot:       PalettePrimary, PaletteSuccess, etc.
//	BorderVariant:     BorderVariantRounded, BorderVariantThick, etc.
//	TypographyVariant: TypographyVariantTitle, TypographyVariantBody, etc.
//
// This provides compile-time safety and excellent IDE autocomplete support.
//
// # Custom Themes
//
// Create custom themes by rebuilding from a modified palette. Every style
// slot (badges, alerts, table chrome) is derived from the palette, so go
// through ThemeFromPalette rather than mutating a built theme:
//
//	palette := components.DefaultTheme().Palette
//	palette.Primary = components.ColourSet{
//		Base:   lipgloss.AdaptiveColor{Light: "#ff0000", Dark: "#ff5555"},
//		OnBase: lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"},
//		// ... other color definitions
//	}
//	customTheme := components.ThemeFromPalette(palette)
//
// # Performance
//
// Themes are immutable value types, avoiding expensive cloning. Rendering is stateless and
// deterministic - the same component with the same context always produces the same output.
// Table sorting is memoized: the processed row view is recomputed only when data, columns,
// or sort state change.
//
// # Examples
//
// See the examples/components directory for comprehensive usage examples.
package components
