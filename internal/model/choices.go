package model

// ProjectType is the kind of work a project inquiry asks about.
type ProjectType string

const (
	ProjectTypeWeb    ProjectType = "web"
	ProjectTypeMobile ProjectType = "mobile"
	ProjectTypeCustom ProjectType = "custom"
	ProjectTypeCloud  ProjectType = "cloud"
	ProjectTypeOther  ProjectType = "other"
)

// ProjectTypes lists every accepted ProjectType in display order.
var ProjectTypes = []ProjectType{
	ProjectTypeWeb, ProjectTypeMobile, ProjectTypeCustom, ProjectTypeCloud, ProjectTypeOther,
}

// Valid reports whether t is one of ProjectTypes.
func (t ProjectType) Valid() bool {
	for _, v := range ProjectTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns the human-readable name of t.
func (t ProjectType) Label() string {
	switch t {
	case ProjectTypeWeb:
		return "Web Development"
	case ProjectTypeMobile:
		return "Mobile App Development"
	case ProjectTypeCustom:
		return "Custom Software"
	case ProjectTypeCloud:
		return "Cloud Solutions"
	case ProjectTypeOther:
		return "Other"
	}
	return string(t)
}

// InquiryStatus tracks how far the operator has taken an inquiry.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusQuoted    InquiryStatus = "quoted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// InquiryStatuses lists every accepted InquiryStatus.
var InquiryStatuses = []InquiryStatus{
	InquiryStatusNew, InquiryStatusContacted, InquiryStatusQuoted, InquiryStatusClosed,
}

// Valid reports whether s is one of InquiryStatuses.
func (s InquiryStatus) Valid() bool {
	for _, v := range InquiryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PortfolioCategory groups portfolio projects for filtering.
type PortfolioCategory string

const (
	PortfolioCategoryWeb       PortfolioCategory = "web"
	PortfolioCategoryMobile    PortfolioCategory = "mobile"
	PortfolioCategoryFullstack PortfolioCategory = "fullstack"
	PortfolioCategoryOther     PortfolioCategory = "other"
)

// PortfolioCategories lists every accepted PortfolioCategory.
var PortfolioCategories = []PortfolioCategory{
	PortfolioCategoryWeb, PortfolioCategoryMobile, PortfolioCategoryFullstack, PortfolioCategoryOther,
}

// Valid reports whether c is one of PortfolioCategories.
func (c PortfolioCategory) Valid() bool {
	for _, v := range PortfolioCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Rating is a testimonial score from 1 to 5.
type Rating int

const (
	MinRating     Rating = 1
	MaxRating     Rating = 5
	DefaultRating Rating = MaxRating
)

// Valid reports whether r lies in [MinRating, MaxRating].
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}
