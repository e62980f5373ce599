package session

// Feedback shown to the learner.
const (
	msgLessonStarted   = "Lesson started! Complete each task to progress."
	msgCorrect         = "Correct! Press Space to continue."
	msgLessonCompleted = "Lesson completed! Press ESC to return to menu."
	msgIncomplete      = "Command incomplete..."
	msgCancelled       = "Command cancelled."
	msgTaskReset       = "Task reset. Try again!"
	msgNextTask        = "Starting next task..."
	msgNoHints         = "No hints available for this task."
	msgReloaded        = "Lessons reloaded."
	msgReloadedReset   = "Lessons reloaded. Task reset."
	msgLessonRemoved   = "Lessons reloaded. The current lesson is no longer available."
)
