package errors

// Error codes are attached to log entries so failures can be grouped.
// Response bodies only carry the human-readable message.
// 형식: CATEGORY_SPECIFIC_DETAIL

const (
	// ==================== 검증 (VALIDATION_) ====================
	ValidationRequired  = "VALIDATION_REQUIRED"   // 필수 항목
	ValidationInvalidID = "VALIDATION_INVALID_ID" // 잘못된 ID

	// ==================== 게시글 (POST_) ====================
	PostNotFound = "POST_NOT_FOUND" // 게시글 없음

	// ==================== 내보내기 (EXPORT_) ====================
	ExportFailed = "EXPORT_FAILED"

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // 서버 오류
)

// Static messages returned to clients.
const (
	MsgPostNotFound         = "Post not found"
	MsgTitleContentRequired = "Title and content are required"
	MsgInvalidPostID        = "Invalid post ID"
	MsgInternalServerError  = "Internal server error"
)
