package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-read-later/models"
	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

type command struct {
	usage string
	args  int
	// optional is the number of trailing arguments that may be omitted.
	optional int
	run      func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"folders":       {usage: "folders", run: (*App).listFolders},
	"add-folder":    {usage: "add-folder <title>", args: 1, run: (*App).addFolder},
	"delete-folder": {usage: "delete-folder <folder local id>", args: 1, run: (*App).deleteFolder},
	"articles":      {usage: "articles <folder local id>", args: 1, run: (*App).listArticles},
	"liked":         {usage: "liked", run: (*App).listLiked},
	"add":           {usage: "add <url> [title]", args: 2, optional: 1, run: (*App).addArticle},
	"delete":        {usage: "delete <article id>", args: 1, run: (*App).deleteArticle},
	"move":          {usage: "move <article id> <folder local id>", args: 2, run: (*App).moveArticle},
	"like":          {usage: "like <article id>", args: 1, run: (*App).likeArticle},
	"unlike":        {usage: "unlike <article id>", args: 1, run: (*App).unlikeArticle},
	"progress":      {usage: "progress <article id> <0.0..1.0>", args: 2, run: (*App).updateProgress},
	"pending":       {usage: "pending", run: (*App).listPending},
	"sync":          {usage: "sync", run: (*App).syncOnce},
}

func (a *App) runCommand(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(args) > cmd.args || len(args) < cmd.args-cmd.optional {
		return fmt.Errorf("%w: usage: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")
	return cmd.run(a, ctx, args)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
	}
	return id, nil
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) listFolders(ctx context.Context, _ []string) error {
	folders, err := a.storages.Entities.ListFolders(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "LOCAL ID\tSERVICE ID\tTITLE\tSYNC")
	for _, f := range folders {
		serviceID := "-"
		if f.ServiceID != nil {
			serviceID = strconv.FormatInt(*f.ServiceID, 10)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", f.LocalID, serviceID, f.Title, f.ShouldSync)
	}
	return w.Flush()
}

func (a *App) addFolder(ctx context.Context, args []string) error {
	folder, err := a.storages.Entities.AddFolder(ctx, models.Folder{
		Title:      strings.TrimSpace(args[0]),
		ShouldSync: true,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, green(fmt.Sprintf("folder %q added with local id %d", folder.Title, folder.LocalID)))
	return err
}

func (a *App) deleteFolder(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.storages.Entities.DeleteFolder(ctx, id)
}

func (a *App) listArticles(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if _, err = a.storages.Entities.GetFolder(ctx, id); err != nil {
		return err
	}

	articles, err := a.storages.Entities.ListArticles(ctx, id)
	if err != nil {
		return err
	}
	return a.printArticles(articles)
}

func (a *App) listLiked(ctx context.Context, _ []string) error {
	articles, err := a.storages.Entities.ListLikedArticles(ctx)
	if err != nil {
		return err
	}
	return a.printArticles(articles)
}

func (a *App) printArticles(articles []models.Article) error {
	w := a.table()
	fmt.Fprintln(w, "ID\tPROGRESS\tLIKED\tTITLE\tURL")
	for _, article := range articles {
		fmt.Fprintf(w, "%d\t%.0f%%\t%t\t%s\t%s\n",
			article.ID, article.ReadProgress*100, article.Liked, article.Title, faint(article.URL))
	}
	return w.Flush()
}

func (a *App) addArticle(ctx context.Context, args []string) error {
	var title *string
	if len(args) == 2 {
		title = models.StringPtr(args[1])
	}
	if err := a.storages.Entities.RequestArticleAdd(ctx, args[0], title); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, green(args[0]+" will be saved on the next sync"))
	return err
}

func (a *App) deleteArticle(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.storages.Entities.DeleteArticle(ctx, id)
}

func (a *App) moveArticle(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	folderID, err := parseID(args[1])
	if err != nil {
		return err
	}
	return a.storages.Entities.MoveArticleToFolder(ctx, id, models.Int64Ptr(folderID))
}

func (a *App) likeArticle(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.storages.Entities.LikeArticle(ctx, id)
}

func (a *App) unlikeArticle(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.storages.Entities.UnlikeArticle(ctx, id)
}

func (a *App) updateProgress(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	progress, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidNumber, args[1])
	}

	_, err = a.storages.Entities.UpdateReadProgress(ctx, id, progress)
	return err
}

func (a *App) listPending(ctx context.Context, _ []string) error {
	changes, err := a.storages.Pending.Snapshot(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "KIND\tCOUNT")
	fmt.Fprintf(w, "folder adds\t%d\n", len(changes.FolderAdds))
	fmt.Fprintf(w, "folder deletes\t%d\n", len(changes.FolderDeletes))
	fmt.Fprintf(w, "article adds\t%d\n", len(changes.ArticleAdds))
	fmt.Fprintf(w, "article deletes\t%d\n", len(changes.ArticleDeletes))
	fmt.Fprintf(w, "article moves\t%d\n", len(changes.ArticleMoves))
	fmt.Fprintf(w, "article state changes\t%d\n", len(changes.ArticleStateChanges))
	return w.Flush()
}

// syncOnce runs one full pass and prints what it did.
func (a *App) syncOnce(ctx context.Context, _ []string) error {
	result, err := a.services.SyncEngine.Sync(ctx)
	if err != nil {
		return err
	}
	cleanup, err := a.services.SyncEngine.CleanupOrphanedArticles(ctx)
	if err != nil {
		return err
	}
	result.OrphanedArticlesFreed = cleanup.OrphanedArticlesFreed

	downloaded := 0
	if a.services.DownloadService != nil {
		if downloaded, err = a.services.DownloadService.DownloadPending(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, green("sync complete"))
	w := a.table()
	fmt.Fprintf(w, "folders added\t%d\n", result.FoldersAdded)
	fmt.Fprintf(w, "folders deleted\t%d\n", result.FoldersDeleted)
	fmt.Fprintf(w, "folders pulled\t%d\n", result.FoldersPulled)
	fmt.Fprintf(w, "articles added\t%d\n", result.ArticlesAdded)
	fmt.Fprintf(w, "articles deleted\t%d\n", result.ArticlesDeleted)
	fmt.Fprintf(w, "articles moved\t%d\n", result.ArticlesMoved)
	fmt.Fprintf(w, "article states changed\t%d\n", result.ArticleStatesChanged)
	fmt.Fprintf(w, "progress pushed\t%d\n", result.ProgressPushed)
	fmt.Fprintf(w, "articles pulled\t%d\n", result.ArticlesPulled)
	fmt.Fprintf(w, "articles unlinked\t%d\n", result.ArticlesUnlinked)
	fmt.Fprintf(w, "orphans freed\t%d\n", result.OrphanedArticlesFreed)
	fmt.Fprintf(w, "downloaded\t%d\n", downloaded)
	return w.Flush()
}
