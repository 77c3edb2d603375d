package models

// CustomCourse is a locally defined bundle referencing external catalog
// modules plus an optional exam.
type CustomCourse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ExamID      *int64  `json:"exam_id"`
}

// CustomCourseSelection is one stored mapping row: a source course in the
// external catalog plus the selected module identifiers for it. ModuleIDs is
// persisted comma-joined and must round-trip losslessly to the id list.
type CustomCourseSelection struct {
	CourseID  string `json:"course_id"`
	ModuleIDs string `json:"module_ids"`
}

// CustomCourseDetail is a custom course with its selections, exam summary
// and assigned users resolved.
type CustomCourseDetail struct {
	CustomCourse
	ExamTitle  *string                 `json:"exam_title"`
	Selections []CustomCourseSelection `json:"modules"`
	Users      []AssignedUser          `json:"users"`
}

// AssignedUser is the slim user view embedded in custom course listings
type AssignedUser struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	Surname   *string `json:"surname"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
}

// UserCourseDetail is the per-user view of an assigned custom course,
// including the progress flag that gates exam visibility.
type UserCourseDetail struct {
	CustomCourse
	IsCompleted bool `json:"-"`
}
