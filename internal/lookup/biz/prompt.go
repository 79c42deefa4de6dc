package biz

import (
	"fmt"
	"strings"
)

const (
	// NoInformationSummary is returned when no snippet survives filtering and
	// is also the sentence the model is told to use when context is thin.
	NoInformationSummary = "Олон нийтэд ил мэдээлэл олдсонгүй, уг дугаарын үйл ажиллагааг тодорхойлох боломжгүй байна."

	// ParseFailedSummary replaces the summary when the model reply cannot be read.
	ParseFailedSummary = "Дүгнэлтийг боловсруулах үед алдаа гарлаа, хайлтын үр дүнг доороос харна уу."
)

const promptTemplate = `Та бол утасны дугаарын талаарх мэдээллийг нэгтгэн дүгнэдэг туслах.
- ЯГ 2–3 өгүүлбэртэй. Урт өгүүлбэр хэрэггүй, товч тодорхой.
- Зөвхөн Монгол хэлээр бич.
- "Энэ дугаарын эзэн иймэрхүү зүйлс цахим сүлжээнд тавьсан учир ийм хүн байж магадгүй" гэсэн хэлбэрээр дүгнэлт гарга.

Хэрвээ мэдээлэл хангалтгүй бол:
"%s" гэж бич.

Хайлтын snippet-үүд:
%s`

// ContextLines renders filtered items as "- {title} | {snippet}" lines
func ContextLines(items []ResultItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("- %s | %s", item.Title, item.Snippet)
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt combines the fixed instructions with the filtered items. The
// item set is already bounded by the filter.
func BuildPrompt(items []ResultItem) string {
	return fmt.Sprintf(promptTemplate, NoInformationSummary, ContextLines(items))
}
