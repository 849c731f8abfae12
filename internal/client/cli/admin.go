package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/admin"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/catalogue"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
)

// ensureLoaded fetches the snapshot on first use of an admin command.
func (a *App) ensureLoaded(ctx context.Context) error {
	a.mu.Lock()
	token, loaded := a.hasToken, a.loaded
	a.mu.Unlock()

	if !token {
		return errNoToken
	}
	if !loaded {
		return a.Refresh(ctx)
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if !a.isAdmin() {
		return errNoToken
	}
	a.table.Refresh(ctx)

	a.mu.Lock()
	a.loaded = true
	a.mu.Unlock()
	return nil
}

// parseRegistrationArgs splits "[query...] [status]": a trailing word that
// names a status (or "all") is the status filter.
func parseRegistrationArgs(args []string) admin.RegistrationFilter {
	var f admin.RegistrationFilter
	if n := len(args); n > 0 {
		last := strings.ToLower(args[n-1])
		if _, err := models.ParseRegistrationStatus(last); err == nil || last == "all" {
			f.Status = last
			args = args[:n-1]
		}
	}
	f.Query = strings.Join(args, " ")
	return f
}

func (a *App) Registrations(ctx context.Context, args []string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	if msg := a.table.LoadError(); msg != "" {
		printlnFn(a.out, msg)
	}

	list := a.table.Registrations(parseRegistrationArgs(args))
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCOURSE\tSTATUS\tDOCS\tJOINED")
	for _, r := range list {
		docs := "-"
		if r.HasDocuments() {
			docs = documents(r)
		}
		joined := ""
		if !r.CreatedAt.IsZero() {
			joined = r.CreatedAt.Format("02 Jan 2006")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.DisplayName(), r.Email, r.Phone, r.CourseName, r.Status, docs, joined)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printlnFn(a.out, fmt.Sprintf("%d registration(s)", len(list)))
	return nil
}

func documents(r models.Registration) string {
	var out []string
	if r.HasAadharFile {
		out = append(out, string(models.FileAadhar))
	}
	if r.HasSignatureFile {
		out = append(out, string(models.FileSignature))
	}
	return strings.Join(out, ",")
}

func (a *App) Payments(ctx context.Context, query string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	list := a.table.Payments(query)
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tAMOUNT\tSTATUS\tCOURSE\tTRANSACTION")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.DisplayName(), p.Email, catalogue.FormatINR(p.Amount), p.Class(), p.CourseName, p.TransactionID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printlnFn(a.out, fmt.Sprintf("%d payment(s)", len(list)))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	s := a.table.Stats()
	printlnFn(a.out, fmt.Sprintf("Students: %d", s.TotalStudents))
	for _, st := range models.RegistrationStatuses {
		printlnFn(a.out, fmt.Sprintf("  %-10s %d", st, s.ByStatus[st]))
	}
	printlnFn(a.out, fmt.Sprintf("Payments: %d (%d successful)", s.TotalPayments, s.SuccessfulPayments))
	printlnFn(a.out, "Revenue: "+catalogue.FormatINR(s.Revenue))
	printlnFn(a.out, fmt.Sprintf("Courses: %d", s.TotalCourses))
	return nil
}

// Status and the other mutations report through notifications, so only
// errors that produced none are returned.
func (a *App) Status(ctx context.Context, id, status string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	if err := a.table.UpdateStatus(ctx, id, status); err != nil {
		a.log.Debug(ctx, "status update failed", "id", id, "error", err)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	err := a.table.Delete(ctx, id)
	if errors.Is(err, admin.ErrDeclined) {
		printlnFn(a.out, "Not deleted.")
	}
	return nil
}

func (a *App) View(ctx context.Context, id, fileType string) error {
	if !a.isAdmin() {
		return errNoToken
	}
	ft, err := models.ParseFileType(fileType)
	if err != nil {
		return err
	}

	st := a.table.ViewFile(ctx, id, ft)
	switch st.Phase {
	case admin.ModalDisplaying:
		if st.Display == admin.DisplayExternal {
			printlnFn(a.out, fmt.Sprintf("%s (%s) cannot be previewed. Open in browser: %s", st.Title, st.ContentType, st.URL))
			return nil
		}
		printlnFn(a.out, fmt.Sprintf("%s of %s (%s %s): %s", st.Title, st.RecordID, st.Display, st.ContentType, st.Path))
		printlnFn(a.out, "Type 'close' when done.")
	case admin.ModalFailed:
		if st.URL != "" {
			printlnFn(a.out, "Open in browser: "+st.URL)
		}
	}
	return nil
}

func (a *App) CloseFile(_ context.Context) error {
	if a.table.FileState().Phase == admin.ModalClosed {
		printlnFn(a.out, "No document is open.")
		return nil
	}
	a.table.CloseFile()
	printlnFn(a.out, "Viewer closed.")
	return nil
}

func (a *App) Download(ctx context.Context, id, fileType string) error {
	if !a.isAdmin() {
		return errNoToken
	}
	ft, err := models.ParseFileType(fileType)
	if err != nil {
		return err
	}

	path, err := a.table.DownloadFile(ctx, id, ft)
	if errors.Is(err, admin.ErrNoSaver) {
		return err
	}
	if err == nil {
		printlnFn(a.out, "Saved to "+path)
	}
	return nil
}
