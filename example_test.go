package mdexport_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdexport"
)

// Example renders markdown with the default theme.
func Example() {
	conv, err := mdexport.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html, err := conv.Render(context.Background(), mdexport.RenderRequest{
		Markdown: "# Hello\n\nWorld",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.HasPrefix(html, "<section style="))
	fmt.Println(strings.Contains(html, "<style"))
	// Output:
	// true
	// false
}

// ExampleParseMarkdown shows the sanitized HTML before styling.
func ExampleParseMarkdown() {
	fmt.Println(mdexport.ParseMarkdown("# Hello\n\nWorld"))
	// Output:
	// <h1>Hello</h1>
	// <p>World</p>
}

// ExampleConverter_ExportContent converts markdown for Jianshu.
func ExampleConverter_ExportContent() {
	conv, err := mdexport.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := conv.ExportContent("jianshu", "- [x] done\n- [ ] todo\n", "", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(res.Content)
	// Output:
	// - ☑ done
	// - ☐ todo
}

// ExampleConverter_ExportContent_wechat shows the DOM-copy-only platform.
func ExampleConverter_ExportContent_wechat() {
	conv, err := mdexport.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = conv.ExportContent("wechat", "# x", "<h1>x</h1>", nil)
	fmt.Println(errors.Is(err, mdexport.ErrDOMCopyOnly))
	// Output: true
}

// ExampleConverter_Exporters lists the platforms in display order.
func ExampleConverter_Exporters() {
	conv, err := mdexport.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range conv.Exporters() {
		fmt.Println(e.ID(), e.FormatType())
	}
	// Output:
	// wechat html
	// zhihu html
	// juejin markdown
	// csdn markdown
	// jianshu markdown
	// markdown markdown
}

// ExampleNewRenderer renders through a worker pool.
func ExampleNewRenderer() {
	conv, err := mdexport.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r := mdexport.NewRenderer(conv, 2)
	defer r.Close()

	html, err := r.Render(context.Background(), mdexport.RenderRequest{Markdown: "**bold**"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Contains(html, "font-weight: bold"))
	// Output: true
}
