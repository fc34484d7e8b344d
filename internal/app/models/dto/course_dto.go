package dto

import "github.com/oguzk/campusreg/internal/app/models"

// CreateCourseRequest represents the request to create a course
type CreateCourseRequest struct {
	Code        string  `json:"code" binding:"required,coursecode"`
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Capacity    int     `json:"capacity" binding:"min=0,max=10000"`
}

// UpdateCourseRequest represents the request to update a course.
// The course code itself is immutable; it identifies the course in the path.
type UpdateCourseRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Capacity    int     `json:"capacity" binding:"min=0,max=10000"`
}

// CourseResponse represents the response for a course
type CourseResponse struct {
	Code        string  `json:"code" example:"CS101"`
	Name        string  `json:"name" example:"Introduction to Computer Science"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity" example:"30"`
	Registered  int     `json:"registered" example:"12"`
	SeatsLeft   int     `json:"seatsLeft" example:"18"`
	CreatedAt   string  `json:"createdAt" example:"2024-01-15T10:00:00Z"`
}

// CourseListResponse represents a paginated list of courses
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}

	return CourseResponse{
		Code:        course.Code,
		Name:        course.Name,
		Description: course.Description,
		Capacity:    course.Capacity,
		Registered:  course.ActiveRegistrations,
		SeatsLeft:   course.SeatsLeft(),
		CreatedAt:   course.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromCourses converts a slice of courses
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, FromCourse(course))
	}
	return out
}
