package service

import "github.com/lk2023060901/callerguard-backend/internal/lookup/biz"

// AnalyzeRequest 号码查询请求
type AnalyzeRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// FoundInformationResponse 过滤后的单条搜索结果
type FoundInformationResponse struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// AnalyzeResponse 号码查询结果
type AnalyzeResponse struct {
	PhoneNumber      string                     `json:"phone_number"`
	Summary          string                     `json:"summary"`
	FoundInformation []FoundInformationResponse `json:"found_information"`
	Sources          []string                   `json:"sources"`
}

// toAnalyzeResponse 转换为响应结构，空集合输出为 []
func toAnalyzeResponse(r *biz.AnalysisResult) *AnalyzeResponse {
	found := make([]FoundInformationResponse, 0, len(r.FoundInformation))
	for _, item := range r.FoundInformation {
		found = append(found, FoundInformationResponse{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}

	sources := r.Sources
	if sources == nil {
		sources = []string{}
	}

	return &AnalyzeResponse{
		PhoneNumber:      r.PhoneNumber,
		Summary:          r.Summary,
		FoundInformation: found,
		Sources:          sources,
	}
}
