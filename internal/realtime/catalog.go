package realtime

// Mutation event names emitted by dashboard clients. The frames carry no
// payload; the name alone selects the toast message broadcast to viewers.
const (
	EventProjectAdd           = "project-add"
	EventProjectUpdate        = "project-update"
	EventProjectDelete        = "project-delete"
	EventSkillsAdd            = "skills-add"
	EventSkillsUpdate         = "skills-update"
	EventSkillsDelete         = "skills-delete"
	EventExperienceAdd        = "experience-add"
	EventExperienceUpdate     = "experience-update"
	EventExperienceDelete     = "experience-delete"
	EventProfileUpdate        = "profile-update"
	EventCollaborationRequest = "collaboration-request"
)

var messages = map[string]string{
	EventProjectAdd:           "Project have been added!",
	EventProjectUpdate:        "Project have been updated!",
	EventProjectDelete:        "Project have been deleted!",
	EventSkillsAdd:            "Skill have been added!",
	EventSkillsUpdate:         "Skill have been updated!",
	EventSkillsDelete:         "Skill have been deleted!",
	EventExperienceAdd:        "Experience have been added!",
	EventExperienceUpdate:     "Experience have been updated!",
	EventExperienceDelete:     "Experience have been deleted!",
	EventProfileUpdate:        "Profile have been updated!",
	EventCollaborationRequest: "Someone have requested to collaborate!",
}

// Message resolves an event name to its broadcast message. Unknown names
// report ok=false and are dropped by the caller.
func Message(event string) (string, bool) {
	msg, ok := messages[event]
	return msg, ok
}
