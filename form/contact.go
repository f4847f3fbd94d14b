package form

type ContactStatusForm struct {
	Status string `form:"status" validate:"required,contactstatus"`
}

var contactMessages = map[string]string{
	"status.required":      "Status is required",
	"status.contactstatus": "Status must be Pending, InProgress, Resolved or Closed",
}

func (f *ContactStatusForm) Validate() Errors {
	return check(f, contactMessages)
}
